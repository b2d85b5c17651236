package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"offertory/internal/core"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage the member registry",
}

var (
	addLast   string
	addFirst  string
	addMiddle string
	addType   string
	addCode   string
	nextType  string
)

var memberAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a member or non-member",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseMemberType(addType)
		if err != nil {
			return err
		}
		member, err := current.svc.Registry.Create(addLast, addFirst, addMiddle, t, addCode)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (%s)\n", member.Name, member.Code)
		return nil
	},
}

var memberListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered members",
	RunE: func(cmd *cobra.Command, args []string) error {
		members, err := current.svc.Registry.All()
		if err != nil {
			return err
		}
		if len(members) == 0 {
			fmt.Println("No members registered.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tTYPE\tID")
		for _, m := range members {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Code, m.Name, m.Type, m.ID)
		}
		return w.Flush()
	},
}

var memberDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a member by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.svc.Registry.Delete(args[0]); err != nil {
			return err
		}
		fmt.Println("Member deleted.")
		return nil
	},
}

var memberNextCodeCmd = &cobra.Command{
	Use:   "next-code",
	Short: "Show the next free code for a member type",
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := parseMemberType(nextType)
		if err != nil {
			return err
		}
		code, err := current.svc.Registry.NextCode(t)
		if err != nil {
			return err
		}
		fmt.Println(code)
		return nil
	},
}

var memberImportCmd = &cobra.Command{
	Use:   "import <file.xlsx>",
	Short: "Replace the registry with members from a workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := current.svc.ImportMembers(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d members.\n", count)
		return nil
	},
}

func parseMemberType(s string) (core.MemberType, error) {
	switch s {
	case "member", "m", string(core.MemberTypeMember):
		return core.MemberTypeMember, nil
	case "non-member", "n", string(core.MemberTypeNonMember):
		return core.MemberTypeNonMember, nil
	default:
		return "", fmt.Errorf("unknown member type %q: use member or non-member", s)
	}
}

func init() {
	memberAddCmd.Flags().StringVar(&addLast, "last", "", "last name (required)")
	memberAddCmd.Flags().StringVar(&addFirst, "first", "", "first name")
	memberAddCmd.Flags().StringVar(&addMiddle, "mi", "", "middle initial")
	memberAddCmd.Flags().StringVar(&addType, "type", "member", "member or non-member")
	memberAddCmd.Flags().StringVar(&addCode, "code", "", "code to assign, next free when empty")

	memberNextCodeCmd.Flags().StringVar(&nextType, "type", "member", "member or non-member")

	memberCmd.AddCommand(memberAddCmd)
	memberCmd.AddCommand(memberListCmd)
	memberCmd.AddCommand(memberDeleteCmd)
	memberCmd.AddCommand(memberNextCodeCmd)
	memberCmd.AddCommand(memberImportCmd)
}
