package printer

import (
	"context"
	"fmt"
	"net"
	"os"
	"sync"
	"time"
)

// Printer sends a rendered ESC/POS job to a receipt printer.
type Printer interface {
	Print(ctx context.Context, data []byte) error
	Kind() string
	Ready(ctx context.Context) bool
}

const (
	KindUSB     = "usb"
	KindNetwork = "network"
	KindNone    = "none"
)

type usbPrinter struct {
	path string
}

// NewUSBPrinter writes jobs to a character device such as /dev/usb/lp0.
func NewUSBPrinter(devicePath string) Printer {
	return &usbPrinter{path: devicePath}
}

func (p *usbPrinter) Print(_ context.Context, data []byte) error {
	f, err := os.OpenFile(p.path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("printer: open %s: %w", p.path, err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.path, err)
	}
	return nil
}

func (p *usbPrinter) Kind() string { return KindUSB }

func (p *usbPrinter) Ready(context.Context) bool {
	_, err := os.Stat(p.path)
	return err == nil
}

type networkPrinter struct {
	address      string
	dialer       net.Dialer
	writeTimeout time.Duration
}

// NewNetworkPrinter sends jobs over raw TCP, usually port 9100.
func NewNetworkPrinter(address string) Printer {
	return &networkPrinter{
		address:      address,
		dialer:       net.Dialer{Timeout: 5 * time.Second},
		writeTimeout: 10 * time.Second,
	}
}

func (p *networkPrinter) Print(ctx context.Context, data []byte) error {
	conn, err := p.dialer.DialContext(ctx, "tcp", p.address)
	if err != nil {
		return fmt.Errorf("printer: dial %s: %w", p.address, err)
	}
	defer conn.Close()

	_ = conn.SetWriteDeadline(time.Now().Add(p.writeTimeout))
	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: write %s: %w", p.address, err)
	}
	return nil
}

func (p *networkPrinter) Kind() string { return KindNetwork }

func (p *networkPrinter) Ready(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	conn, err := p.dialer.DialContext(ctx, "tcp", p.address)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// Spool keeps jobs in memory. It stands in when no hardware is configured.
type Spool struct {
	mu   sync.Mutex
	jobs [][]byte
}

// NewSpool creates an empty in-memory printer.
func NewSpool() *Spool {
	return &Spool{}
}

func (s *Spool) Print(_ context.Context, data []byte) error {
	job := make([]byte, len(data))
	copy(job, data)

	s.mu.Lock()
	s.jobs = append(s.jobs, job)
	s.mu.Unlock()
	return nil
}

func (s *Spool) Kind() string { return KindNone }

func (s *Spool) Ready(context.Context) bool { return false }

// Jobs returns the spooled jobs, oldest first.
func (s *Spool) Jobs() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]byte, len(s.jobs))
	copy(out, s.jobs)
	return out
}

// New picks a printer for kind: "usb", "network" or "none".
func New(kind, usbPath, address string) (Printer, error) {
	switch kind {
	case KindUSB:
		if usbPath == "" {
			return nil, fmt.Errorf("printer: usb printer needs a device path")
		}
		return NewUSBPrinter(usbPath), nil
	case KindNetwork:
		if address == "" {
			return nil, fmt.Errorf("printer: network printer needs an address")
		}
		return NewNetworkPrinter(address), nil
	case KindNone, "":
		return NewSpool(), nil
	default:
		return nil, fmt.Errorf("printer: unknown kind %q", kind)
	}
}
