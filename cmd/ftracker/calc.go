package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garrettladley/ftracker/internal/training"
	"github.com/garrettladley/ftracker/internal/xerrors"
)

func (a *app) calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <code> <field>...",
		Short: "Report on a single sensor package",
		Long:  "Reads one package from the arguments. Run `ftracker codes` for the fields each code expects.",
		Example: "  ftracker calc RUN 15000 1 75\n" +
			"  ftracker calc wlk 9000 1 75 180\n" +
			"  ftracker calc SWM 720 1 80 25 40 --format json",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := training.ParseCode(args[0])
			if err != nil {
				return err
			}

			data, err := parseFields(code, args[1:])
			if err != nil {
				return err
			}

			return a.report(cmd, []training.Package{{Code: code.String(), Data: data}})
		},
	}
}

func parseFields(code training.Code, args []string) ([]float64, error) {
	names := code.Fields()
	data := make([]float64, len(args))
	invalid := make(map[string]string)
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			name := fmt.Sprintf("field %d", i+1)
			if i < len(names) {
				name = names[i]
			}
			invalid[name] = fmt.Sprintf("%q is not a number", arg)
			continue
		}
		data[i] = v
	}
	if len(invalid) > 0 {
		return nil, xerrors.Validation(invalid)
	}
	return data, nil
}
