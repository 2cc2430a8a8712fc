package client

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/destiny-api/internal/handlers/destiny/v1alpha1"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [item-id]",
	Short: "Classify an item id and show its cross-specialization modifier",
	Args:  cobra.ExactArgs(1),
	RunE:  runClassify,
}

func runClassify(_ *cobra.Command, args []string) error {
	itemID := args[0]

	resp, err := call(v1alpha1.MethodResolveCrossSpecModifier, map[string]any{"itemId": itemID})
	if err != nil {
		return fmt.Errorf("failed to classify %s: %w", itemID, err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	fields := resp.GetFields()
	item := fields["item"].GetStructValue().GetFields()
	fmt.Printf("%s\n", itemID)
	fmt.Printf("  Variant:        %s\n", fields["class"].GetStringValue())
	fmt.Printf("  Slot:           %s\n", item["slot"].GetStringValue())
	fmt.Printf("  Mastery table:  %s\n", item["masteryTable"].GetStringValue())
	fmt.Printf("  Spec table:     %s\n", item["specTable"].GetStringValue())
	fmt.Printf("  Cross-spec mod: %g\n", fields["modifier"].GetNumberValue())

	return nil
}
