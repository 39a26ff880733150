package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/italia/pkg/numeric"
)

var (
	stepType   string
	stepValue  string
	stepMin    string
	stepMax    string
	stepStep   string
	stepFactor int
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Apply one number-field step",
	Long: `Apply the number field's increment/decrement rule: value + step*factor,
clamped to [min, max]. Blank operands take their defaults: value 0, step 1
and the type's range for min and max.

Types: int16 (short), int32 (int), int64 (long), float32 (float, single),
float64 (double), decimal.

Examples:
  italia step --type int32 --value 9 --max 10 --step 2      # 10
  italia step --type decimal --value 1.10 --step 0.05       # 1.15
  italia step --type int16 --value 32767                    # 32767`,
	Args: cobra.NoArgs,
	RunE: runStep,
}

func init() {
	rootCmd.AddCommand(stepCmd)

	stepCmd.Flags().StringVarP(&stepType, "type", "t", "int32", "Number type")
	stepCmd.Flags().StringVar(&stepValue, "value", "", "Current value")
	stepCmd.Flags().StringVar(&stepMin, "min", "", "Lower bound")
	stepCmd.Flags().StringVar(&stepMax, "max", "", "Upper bound")
	stepCmd.Flags().StringVar(&stepStep, "step", "", "Step size")
	stepCmd.Flags().IntVar(&stepFactor, "factor", 1, "Step multiplier; negative decrements")
}

func runStep(cmd *cobra.Command, _ []string) error {
	kind, err := numeric.ParseKind(stepType)
	if err != nil {
		return err
	}

	operands := make([]any, 4)
	for i, text := range []string{stepValue, stepMin, stepMax, stepStep} {
		if operands[i], err = numeric.Parse(kind, text); err != nil {
			return err
		}
	}

	result, err := numeric.Step(kind, operands[0], operands[1], operands[2], operands[3], stepFactor)
	if err != nil {
		return err
	}

	s, err := numeric.FormatAny(result, "")
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), s)

	return nil
}
