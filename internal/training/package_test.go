package training

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garrettladley/ftracker/internal/report"
	"github.com/garrettladley/ftracker/internal/xerrors"
	"github.com/garrettladley/ftracker/internal/xslog"
)

type recorder struct {
	infos []report.Info
	err   error
}

func (r *recorder) Write(info report.Info) error {
	if r.err != nil {
		return r.err
	}
	r.infos = append(r.infos, info)
	return nil
}

func TestRunDefaultPackages(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w, err := report.NewWriter(&buf, report.FormatText)
	require.NoError(t, err)

	require.NoError(t, Run(context.Background(), DefaultPackages, w))

	want := strings.Join([]string{
		"Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.",
		"Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestRunSkipsUnknownCode(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	ctx := xslog.WithLogger(context.Background(), xslog.NewLogger(&logs, xslog.LevelDebug))

	packages := []Package{
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "YOGA", Data: []float64{1, 1, 1}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}

	rec := &recorder{}
	err := Run(ctx, packages, rec)

	require.Error(t, err)
	assert.ErrorIs(t, err, xerrors.ErrUnknownActivity)
	assert.Contains(t, err.Error(), "package 1")

	require.Len(t, rec.infos, 2)
	assert.Equal(t, "Running", rec.infos[0].TrainingType)
	assert.Equal(t, "SportsWalking", rec.infos[1].TrainingType)

	assert.Contains(t, logs.String(), `"msg":"skipping package"`)
	assert.Contains(t, logs.String(), `"code":"YOGA"`)
}

func TestRunStopsOnWriterError(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	rec := &recorder{err: boom}

	err := Run(context.Background(), DefaultPackages, rec)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "package 0")
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	err := Run(ctx, DefaultPackages, rec)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.infos)
}
