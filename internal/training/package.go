package training

import (
	"context"
	"errors"
	"fmt"

	"github.com/garrettladley/ftracker/internal/report"
	"github.com/garrettladley/ftracker/internal/xerrors"
	"github.com/garrettladley/ftracker/internal/xslog"
)

// Package is one raw sensor reading: an activity code plus its fields.
type Package struct {
	Code string
	Data []float64
}

// DefaultPackages is the built-in set of readings the CLI reports on when
// given no arguments.
var DefaultPackages = []Package{
	{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
	{Code: "RUN", Data: []float64{15000, 1, 75}},
	{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
}

// ReportWriter receives one report per successfully read package.
type ReportWriter interface {
	Write(info report.Info) error
}

// Run reports on each package in order. A package that cannot be read is
// logged and skipped; its error is returned, joined with the others, once
// every package has been tried. A failing writer stops the run.
func Run(ctx context.Context, packages []Package, w ReportWriter) error {
	logger := xslog.FromContext(ctx)

	var errs []error
	for i, pkg := range packages {
		if err := ctx.Err(); err != nil {
			return err
		}

		sample, err := Read(pkg.Code, pkg.Data)
		if err != nil {
			attrs := []any{xslog.Index(i), xslog.Code(pkg.Code), xslog.Error(err)}
			if xe := xerrors.As(err); xe != nil && len(xe.Fields) > 0 {
				attrs = append(attrs, xslog.Fields(xe.Fields))
			}
			logger.ErrorContext(ctx, "skipping package", attrs...)
			errs = append(errs, fmt.Errorf("package %d: %w", i, err))
			continue
		}

		if err := w.Write(Summarize(sample)); err != nil {
			return fmt.Errorf("writing report for package %d: %w", i, err)
		}
		logger.DebugContext(ctx, "reported package", xslog.Index(i), xslog.Code(pkg.Code))
	}

	logger.DebugContext(ctx, "run complete",
		xslog.Count(len(packages)-len(errs)),
		xslog.Version(),
	)
	return errors.Join(errs...)
}
