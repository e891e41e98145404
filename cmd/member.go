// Copyright 2026 Union Simple Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/unionsimple/union-service/internal/types"
)

var memberCmd = &cobra.Command{
	Use:   "member",
	Short: "Manage a union's member roster",
}

var listMembersCmd = &cobra.Command{
	Use:   "list [union-slug]",
	Short: "List the union's members",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var members []*types.Member
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, "/api/v0/unions/"+args[0]+"/members", nil, &members); err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		if len(members) == 0 {
			fmt.Println("No members found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSTATUS\tEMAIL")
		for _, m := range members {
			email := ""
			if m.Email != nil {
				email = *m.Email
			}
			fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n", m.ID, m.FirstName, m.LastName, m.Status, email)
		}
		return w.Flush()
	},
}

var addMemberCmd = &cobra.Command{
	Use:   "add [union-slug] [first-name] [last-name]",
	Short: "Add a member to the union's roster",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{
			"first_name": args[1],
			"last_name":  args[2],
		}
		if email, _ := cmd.Flags().GetString("email"); email != "" {
			body["email"] = email
		}
		if status, _ := cmd.Flags().GetString("status"); status != "" {
			body["status"] = status
		}

		m := new(types.Member)
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v0/unions/"+args[0]+"/members", body, m); err != nil {
			return fmt.Errorf("failed to add member: %w", err)
		}

		fmt.Printf("Member added: %s %s (ID: %s)\n", m.FirstName, m.LastName, m.ID)
		return nil
	},
}

func init() {
	addMemberCmd.Flags().String("email", "", "Member email address")
	addMemberCmd.Flags().String("status", "", "Member status (active, pending or inactive)")

	memberCmd.AddCommand(listMembersCmd)
	memberCmd.AddCommand(addMemberCmd)
	rootCmd.AddCommand(memberCmd)
}
