package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
)

type recommendOptions struct {
	bust, waist, hips, highHip string
	unit                       string
	undertone                  string
	occasion                   string
	city                       string
	advice                     bool
	save                       bool
	asJSON                     bool
}

func newRecommendCommand(factory Factory) *cobra.Command {
	var opts recommendOptions
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Classify measurements and print styling advice",
		Long: `Classify measurements and print styling advice.

Examples:
  styling-advisor recommend --bust 37 --waist 29 --hips 37
  styling-advisor recommend --bust 94 --waist 74 --hips 100 --unit cm --undertone warm --occasion "cocktail party" --city Paris --save`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := fmt.Sprintf("bust=%q waist=%q hips=%q high_hip=%q unit=%q",
				opts.bust, opts.waist, opts.hips, opts.highHip, opts.unit)
			raw, err := styling.ParseRawMeasurements(opts.bust, opts.waist, opts.hips, opts.highHip, opts.unit)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			advisor, err := advisorFrom(factory)
			if err != nil {
				return err
			}
			resp, err := advisor.Recommend(cmd.Context(), styling.Request{
				Bust:          raw.Bust,
				Waist:         raw.Waist,
				Hips:          raw.Hips,
				HighHip:       raw.HighHip,
				Unit:          raw.Unit,
				Undertone:     opts.undertone,
				Occasion:      opts.occasion,
				City:          opts.city,
				IncludeAdvice: opts.advice,
				Save:          opts.save,
			})
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			renderResponse(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.bust, "bust", "", "bust measurement")
	flags.StringVar(&opts.waist, "waist", "", "waist measurement")
	flags.StringVar(&opts.hips, "hips", "", "hip measurement")
	flags.StringVar(&opts.highHip, "high-hip", "", "high hip measurement (optional)")
	flags.StringVarP(&opts.unit, "unit", "u", "inches", "measurement unit (inches, cm)")
	flags.StringVar(&opts.undertone, "undertone", "", "skin undertone (warm, cool, neutral)")
	flags.StringVarP(&opts.occasion, "occasion", "o", "", "occasion, e.g. \"business casual\"")
	flags.StringVar(&opts.city, "city", "", "city for current weather")
	flags.BoolVar(&opts.advice, "advice", false, "ask the stylist model for free-text advice")
	flags.BoolVar(&opts.save, "save", false, "append the outfit to saved history")
	flags.BoolVar(&opts.asJSON, "json", false, "print the raw JSON response")
	_ = cmd.MarkFlagRequired("bust")
	_ = cmd.MarkFlagRequired("waist")
	_ = cmd.MarkFlagRequired("hips")
	return cmd
}
