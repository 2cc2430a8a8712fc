package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/destiny-api/internal/handlers/destiny/v1alpha1"
)

var setLevelSlot int

var setLevelCmd = &cobra.Command{
	Use:   "set-level [owner-id] [table-id] [level]",
	Short: "Set one Destiny Board level on a profile",
	Args:  cobra.ExactArgs(3),
	RunE:  runSetLevel,
}

func init() {
	setLevelCmd.Flags().IntVar(&setLevelSlot, "slot", 0, "Character slot")
}

func runSetLevel(_ *cobra.Command, args []string) error {
	level, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("level must be a number: %w", err)
	}

	resp, err := call(v1alpha1.MethodSetLevel, map[string]any{
		"ownerId": args[0],
		"slot":    setLevelSlot,
		"tableId": args[1],
		"level":   level,
	})
	if err != nil {
		return fmt.Errorf("failed to set level: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	if !resp.GetFields()["applied"].GetBoolValue() {
		fmt.Printf("Unknown table %s, nothing changed\n", args[1])
		return nil
	}

	specs := resp.GetFields()["profile"].GetStructValue().GetFields()["specs"].GetStructValue().GetFields()
	fmt.Printf("%s is now level %d\n", args[1], int(specs[args[1]].GetNumberValue()))
	return nil
}
