package client

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/destiny-api/internal/handlers/destiny/v1alpha1"
)

var (
	getProfileSlot    int
	getProfileShowAll bool
)

var getProfileCmd = &cobra.Command{
	Use:   "get-profile [owner-id]",
	Short: "Show a character profile",
	Long:  `Show a character profile. Tables at level 0 are hidden unless --all is given.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGetProfile,
}

func init() {
	getProfileCmd.Flags().IntVar(&getProfileSlot, "slot", 0, "Character slot")
	getProfileCmd.Flags().BoolVar(&getProfileShowAll, "all", false, "Show tables at level 0")
}

func runGetProfile(_ *cobra.Command, args []string) error {
	resp, err := call(v1alpha1.MethodGetProfile, map[string]any{
		"ownerId": args[0],
		"slot":    getProfileSlot,
	})
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if jsonOutput {
		return printJSON(resp)
	}

	p := resp.GetFields()["profile"].GetStructValue().GetFields()
	specs := p["specs"].GetStructValue().GetFields()

	ids := make([]string, 0, len(specs))
	for id := range specs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("%s @ %s (slot %d)\n", p["name"].GetStringValue(), p["server"].GetStringValue(), getProfileSlot)
	fmt.Printf("  Profile: %s\n", p["profileId"].GetStringValue())
	fmt.Printf("  Updated: %s\n", p["updatedAt"].GetStringValue())

	shown := 0
	for _, id := range ids {
		level := int(specs[id].GetNumberValue())
		if level == 0 && !getProfileShowAll {
			continue
		}
		fmt.Printf("  %-40s %3d\n", id, level)
		shown++
	}
	fmt.Printf("  %s of %s tables shown\n", humanize.Comma(int64(shown)), humanize.Comma(int64(len(ids))))

	return nil
}
