package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/billerone/billerone-web/internal/domain/entity"
	"github.com/billerone/billerone-web/internal/domain/enum"
	"github.com/billerone/billerone-web/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newClientList(repo *fakeCollection[entity.Client], notices Notifier) *ResourceList[entity.Client] {
	return NewResourceList(ClientDefinition(), repo, notices, zap.NewNop())
}

func validClient(id int, name, nationalID string) entity.Client {
	return entity.Client{
		ID:            id,
		Name:          name,
		NationalID:    nationalID,
		LedgerAccount: strPtr("1101-01"),
		Status:        enum.StatusPtr(enum.StatusActive),
	}
}

func TestResourceList_LoadFailureKeepsCache(t *testing.T) {
	repo := &fakeCollection[entity.Client]{items: []entity.Client{validClient(1, "Ozama", "00112345673")}}
	notices := &recordingNotifier{}
	list := newClientList(repo, notices)
	ctx := context.Background()

	require.NoError(t, list.Load(ctx))
	require.Len(t, list.Items(), 1)

	repo.setListErr(apperror.ErrBackendUnavailable)
	require.Error(t, list.Load(ctx))

	assert.Len(t, list.Items(), 1)
	assert.Equal(t, []NoticeLevel{NoticeError}, notices.levels())
}

func TestResourceList_RemoveAfterFailedLoadUsesLastCache(t *testing.T) {
	repo := &fakeCollection[entity.Client]{items: []entity.Client{validClient(1, "Ozama", "00112345673")}}
	list := newClientList(repo, &recordingNotifier{})
	ctx := context.Background()

	require.NoError(t, list.Load(ctx))
	repo.setListErr(errors.New("connection reset"))
	require.Error(t, list.Load(ctx))

	err := list.Remove(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, []int{1}, repo.deletes)
	assert.Len(t, list.Items(), 1)
}

func TestResourceList_RemoveUnknownID(t *testing.T) {
	repo := &fakeCollection[entity.Client]{}
	list := newClientList(repo, &recordingNotifier{})

	err := list.Remove(context.Background(), 99)

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
	assert.Empty(t, repo.deletes)
}

func TestResourceList_RemoveFailureNotifies(t *testing.T) {
	repo := &fakeCollection[entity.Client]{items: []entity.Client{validClient(1, "Ozama", "00112345673")}}
	notices := &recordingNotifier{}
	list := newClientList(repo, notices)
	require.NoError(t, list.Load(context.Background()))

	repo.saveErr = apperror.NewBackendError(http.StatusConflict, "client has invoices")
	err := list.Remove(context.Background(), 1)

	require.Error(t, err)
	assert.Equal(t, []NoticeLevel{NoticeError}, notices.levels())
	assert.Len(t, list.Items(), 1)
}

func TestResourceList_SaveInvalidSkipsRequest(t *testing.T) {
	repo := &fakeCollection[entity.Client]{}
	list := newClientList(repo, &recordingNotifier{})
	values := validClient(0, "   ", "00112345673")

	err := list.Save(context.Background(), values, nil)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Contains(t, apperror.GetAppError(err).Fields(), "NombreComercial")
	assert.Empty(t, repo.creates)
	assert.Zero(t, repo.lists)

	form := list.Form()
	assert.True(t, form.Open)
	assert.Equal(t, values, form.Values)
	assert.Contains(t, form.Errors, "NombreComercial")
}

func TestResourceList_SaveInvalidWhileListUnreachable(t *testing.T) {
	repo := &fakeCollection[entity.Vendor]{listErr: apperror.NewBackendError(http.StatusNotFound, "not found")}
	list := NewResourceList(VendorDefinition(), repo, &recordingNotifier{}, zap.NewNop())

	err := list.Save(context.Background(), entity.Vendor{}, nil)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	fields := apperror.GetAppError(err).Fields()
	assert.Contains(t, fields, "Nombre")
	assert.Contains(t, fields, "RNC")
	assert.Zero(t, repo.lists)
	assert.Empty(t, repo.creates)
}

func TestResourceList_SaveLoadsBeforeUniquenessCheck(t *testing.T) {
	repo := &fakeCollection[entity.Client]{items: []entity.Client{validClient(1, "Ozama", "00112345673")}}
	list := newClientList(repo, &recordingNotifier{})

	err := list.Save(context.Background(), validClient(0, "Otra", "001-1234567-3"), nil)

	require.Error(t, err)
	assert.Equal(t, "National id is already registered", apperror.GetAppError(err).Fields()["RNC_Cedula"])
	assert.Equal(t, 1, repo.lists)
	assert.Empty(t, repo.creates)
	assert.True(t, list.Loaded())
}

func TestResourceList_SaveUniquenessLoadFailure(t *testing.T) {
	repo := &fakeCollection[entity.Client]{listErr: apperror.ErrBackendUnavailable}
	list := newClientList(repo, &recordingNotifier{})
	values := validClient(0, "Otra", "00112345673")

	err := list.Save(context.Background(), values, nil)

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, apperror.GetAppError(err).Code)
	assert.Empty(t, repo.creates)
	assert.True(t, list.Form().Open)
	assert.Equal(t, values, list.Form().Values)
}

func TestResourceList_CloseForm(t *testing.T) {
	list := newClientList(&fakeCollection[entity.Client]{}, &recordingNotifier{})
	_ = list.Save(context.Background(), validClient(0, "", ""), nil)
	require.True(t, list.Form().Open)

	list.CloseForm()

	form := list.Form()
	assert.False(t, form.Open)
	assert.Empty(t, form.Errors)
	assert.Equal(t, entity.NewClientForm(), form.Values)
}

func TestResourceList_SaveCreatesAndReloads(t *testing.T) {
	repo := &fakeCollection[entity.Client]{}
	notices := &recordingNotifier{}
	list := newClientList(repo, notices)
	ctx := context.Background()
	require.NoError(t, list.Load(ctx))
	_, err := list.OpenForm(nil)
	require.NoError(t, err)

	require.NoError(t, list.Save(ctx, validClient(0, "Ozama", "001-1234567-3"), nil))

	require.Len(t, repo.creates, 1)
	assert.Equal(t, 2, repo.lists)
	assert.False(t, list.Form().Open)
	assert.Equal(t, entity.NewClientForm(), list.Form().Values)
	assert.Equal(t, []NoticeLevel{NoticeInfo}, notices.levels())
}

func TestResourceList_SaveUpdate(t *testing.T) {
	existing := validClient(3, "Ozama", "00112345673")
	repo := &fakeCollection[entity.Client]{items: []entity.Client{existing}}
	list := newClientList(repo, &recordingNotifier{})
	ctx := context.Background()
	require.NoError(t, list.Load(ctx))

	form, err := list.OpenForm(intPtr(3))
	require.NoError(t, err)
	assert.Equal(t, existing, form.Values)
	require.NotNil(t, form.EditingID)

	values := form.Values
	values.Name = "Ferretería Ozama"
	// same national id is allowed for the record being edited
	require.NoError(t, list.Save(ctx, values, form.EditingID))

	assert.Equal(t, "Ferretería Ozama", repo.updates[3].Name)
}

func TestResourceList_SaveFailureKeepsForm(t *testing.T) {
	repo := &fakeCollection[entity.Client]{saveErr: apperror.NewBackendError(http.StatusBadRequest, "duplicated")}
	notices := &recordingNotifier{}
	list := newClientList(repo, notices)
	values := validClient(0, "Ozama", "00112345673")

	err := list.Save(context.Background(), values, nil)

	require.Error(t, err)
	assert.Equal(t, "duplicated", err.Error())
	form := list.Form()
	assert.True(t, form.Open)
	assert.Equal(t, values, form.Values)
	assert.Equal(t, []NoticeLevel{NoticeError}, notices.levels())
}

func TestResourceList_StaleLoadDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	calls := 0

	repo := &fakeCollection[entity.Client]{}
	repo.listFn = func(ctx context.Context) ([]entity.Client, error) {
		repo.mu.Lock()
		calls++
		n := calls
		repo.mu.Unlock()

		if n == 1 {
			close(started)
			<-release
			return []entity.Client{validClient(1, "Old", "00112345673")}, nil
		}
		return []entity.Client{validClient(2, "New", "00112345673")}, nil
	}
	list := newClientList(repo, &recordingNotifier{})
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- list.Load(ctx) }()
	<-started

	require.NoError(t, list.Load(ctx))
	close(release)
	require.NoError(t, <-done)

	items := list.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "New", items[0].Name)
}

func TestResourceList_OlderLoadFillsEmptyCache(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	calls := 0

	repo := &fakeCollection[entity.Client]{}
	repo.listFn = func(ctx context.Context) ([]entity.Client, error) {
		repo.mu.Lock()
		calls++
		n := calls
		repo.mu.Unlock()

		if n == 1 {
			close(started)
			<-release
			return []entity.Client{validClient(1, "Old", "00112345673")}, nil
		}
		return nil, apperror.ErrBackendUnavailable
	}
	list := newClientList(repo, &recordingNotifier{})
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- list.EnsureLoaded(ctx) }()
	<-started

	require.Error(t, list.Load(ctx))
	close(release)
	require.NoError(t, <-done)

	assert.True(t, list.Loaded())
	items := list.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Old", items[0].Name)
}

func TestResourceList_Filter(t *testing.T) {
	repo := &fakeCollection[entity.Client]{items: []entity.Client{
		validClient(1, "Ferretería Ozama", "001-1234567-3"),
		validClient(2, "Colmado Luz", "40212345678"),
	}}
	list := newClientList(repo, &recordingNotifier{})
	require.NoError(t, list.Load(context.Background()))

	assert.Len(t, list.Filter(""), 2)
	assert.Len(t, list.Filter("OZAMA"), 1)
	got := list.Filter("0011234")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestResourceList_OpenFormUnknown(t *testing.T) {
	list := newClientList(&fakeCollection[entity.Client]{}, &recordingNotifier{})

	_, err := list.OpenForm(intPtr(5))

	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestResourceList_ReadOnly(t *testing.T) {
	repo := &fakeCollection[entity.AccountingEntry]{}
	list := NewResourceList(EntryDefinition(), repo, &recordingNotifier{}, zap.NewNop())

	err := list.Save(context.Background(), entity.AccountingEntry{}, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
	assert.Empty(t, repo.creates)
}

func TestResourceDefinition_Titles(t *testing.T) {
	def := ClientDefinition()
	assert.Equal(t, "Client", def.Title())
	assert.Equal(t, "Clients", def.PluralTitle())
}
