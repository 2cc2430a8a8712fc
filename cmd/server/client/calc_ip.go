package client

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/destiny-api/internal/handlers/destiny/v1alpha1"
)

var (
	calcOwnerID string
	calcSlot    int
	calcQuality string
	calcBaseIP  float64
)

var calcIPCmd = &cobra.Command{
	Use:   "calc-ip [item-id]",
	Short: "Calculate item power for an item against a profile",
	Long: `Calculate the item power breakdown of a catalog item. Without --owner the
item is evaluated with every Destiny Board level at zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runCalcIP,
}

func init() {
	calcIPCmd.Flags().StringVar(&calcOwnerID, "owner", "", "Profile owner id")
	calcIPCmd.Flags().IntVar(&calcSlot, "slot", 0, "Character slot")
	calcIPCmd.Flags().StringVar(&calcQuality, "quality", "", "Quality tier (normal, good, outstanding, excellent, masterpiece)")
	calcIPCmd.Flags().Float64Var(&calcBaseIP, "base-ip", 0, "Override the catalog base item power")
}

func runCalcIP(cmd *cobra.Command, args []string) error {
	req := map[string]any{
		"itemId": args[0],
		"slot":   calcSlot,
	}
	if calcOwnerID != "" {
		req["ownerId"] = calcOwnerID
	}
	if calcQuality != "" {
		req["quality"] = calcQuality
	}
	if cmd.Flags().Changed("base-ip") {
		req["baseIP"] = calcBaseIP
	}

	resp, err := call(v1alpha1.MethodCalculateItemPower, req)
	if err != nil {
		return fmt.Errorf("failed to calculate item power: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	r := resp.GetFields()["result"].GetStructValue().GetFields()
	num := func(key string) string {
		return humanize.FormatFloat("#,###.##", r[key].GetNumberValue())
	}

	fmt.Printf("%s\n", r["itemId"].GetStringValue())
	fmt.Printf("  Base IP:            %s\n", num("baseIP"))
	fmt.Printf("  Quality bonus:      %s\n", num("qualityBonus"))
	fmt.Printf("  Mastery (lvl %3d):  %s\n", int(r["masteryLevel"].GetNumberValue()), num("masteryBonus"))
	fmt.Printf("  Mastery modifier:   %s\n", num("masteryModifierBonus"))
	fmt.Printf("  Spec (lvl %3d):     %s\n", int(r["specLevel"].GetNumberValue()), num("specUniqueContribution"))
	fmt.Printf("  Cross-spec:         %s\n", num("crossSpecContribution"))
	for _, v := range r["siblingSpecsUsed"].GetListValue().GetValues() {
		sib := v.GetStructValue().GetFields()
		fmt.Printf("    %-32s lvl %3d x %g = %s\n",
			sib["tableId"].GetStringValue(),
			int(sib["level"].GetNumberValue()),
			sib["modifier"].GetNumberValue(),
			humanize.FormatFloat("#,###.##", sib["contribution"].GetNumberValue()))
	}
	fmt.Printf("  Total IP:           %s\n", num("totalIP"))

	return nil
}
