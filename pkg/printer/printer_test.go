package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	p, err := New("", "", "")
	require.NoError(t, err)
	assert.Equal(t, KindNone, p.Kind())

	_, err = New(KindUSB, "", "")
	assert.Error(t, err)

	_, err = New(KindNetwork, "", "")
	assert.Error(t, err)

	_, err = New("serial", "", "")
	assert.Error(t, err)

	p, err = New(KindNetwork, "", "127.0.0.1:9100")
	require.NoError(t, err)
	assert.Equal(t, KindNetwork, p.Kind())
}

func TestSpool_KeepsCopies(t *testing.T) {
	s := NewSpool()
	job := []byte("abc")

	require.NoError(t, s.Print(context.Background(), job))
	job[0] = 'x'

	jobs := s.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, []byte("abc"), jobs[0])
	assert.False(t, s.Ready(context.Background()))
}

func TestDocument_Pair(t *testing.T) {
	d := NewDocument(16)
	d.Pair("Total", "118.00")

	out := d.Bytes()
	assert.True(t, bytes.HasPrefix(out, []byte{esc, '@'}))
	assert.Contains(t, string(out), "Total     118.00\n")
}

func TestDocument_PairClipsLeft(t *testing.T) {
	d := NewDocument(12)
	d.Pair("A very long description", "9.99")

	assert.Contains(t, string(d.Bytes()), "A very  9.99\n")
}

func TestDocument_LineClipsToWidth(t *testing.T) {
	d := NewDocument(4)
	d.Line("cañada").Rule('=')

	s := string(d.Bytes())
	assert.Contains(t, s, "caña\n")
	assert.Contains(t, s, "====\n")
}
