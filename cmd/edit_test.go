package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golker16/pizarra/pkg/assets"
	"github.com/golker16/pizarra/pkg/models"
	"github.com/golker16/pizarra/pkg/service"
)

func newTestService(t *testing.T) *service.Service {
	t.Helper()
	store, err := assets.New(filepath.Join(t.TempDir(), "assets"))
	require.NoError(t, err)

	svc, err := service.New(service.Options{
		Project: models.NewProject(),
		Assets:  store,
		Save:    func(*models.Project) error { return nil },
	})
	require.NoError(t, err)
	return svc
}

func TestEditArrowGeometry(t *testing.T) {
	svc := newTestService(t)

	n, err := svc.CreateNote(models.KindArrow, [2]float64{0, 0})
	require.NoError(t, err)

	cmd := NewEditCmd(&svc)
	cmd.SetArgs([]string{shortID(n.ID), "--from", "10,20", "--to", "110,80", "--stroke-pt", "4"})
	require.NoError(t, cmd.Execute())

	p, ok := n.Payload.(models.ArrowPayload)
	require.True(t, ok)
	assert.Equal(t, [2]float64{10, 20}, p.From)
	assert.Equal(t, [2]float64{110, 80}, p.To)
	assert.Equal(t, 4, p.StrokeWidth)
}

func TestEditArrowRejectsBadPosition(t *testing.T) {
	svc := newTestService(t)

	n, err := svc.CreateNote(models.KindArrow, [2]float64{0, 0})
	require.NoError(t, err)

	cmd := NewEditCmd(&svc)
	cmd.SetArgs([]string{shortID(n.ID), "--from", "not-a-pos"})
	assert.Error(t, cmd.Execute())
	assert.Equal(t, models.ArrowPayload{From: [2]float64{0, 0}, To: [2]float64{120, 0}, StrokeWidth: models.DefaultStrokeWidth}, n.Payload)
}
