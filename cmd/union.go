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

var unionCmd = &cobra.Command{
	Use:   "union",
	Short: "Manage unions",
}

var createUnionCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new union, allocating its slug from the name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]any{"name": args[0]}
		if description, _ := cmd.Flags().GetString("description"); description != "" {
			body["description"] = description
		}

		u := new(types.Union)
		if err := newAPIClient().do(cmd.Context(), http.MethodPost, "/api/v0/unions", body, u); err != nil {
			return fmt.Errorf("failed to create union: %w", err)
		}

		fmt.Printf("Union created: %s (slug: %s)\n", u.Name, u.Slug)
		return nil
	},
}

var listUnionsCmd = &cobra.Command{
	Use:   "list",
	Short: "List unions created by the authenticated principal",
	RunE: func(cmd *cobra.Command, args []string) error {
		var unions []*types.Union
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, "/api/v0/unions", nil, &unions); err != nil {
			return fmt.Errorf("failed to list unions: %w", err)
		}

		if len(unions) == 0 {
			fmt.Println("No unions found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tNAME\tCREATED")
		for _, u := range unions {
			fmt.Fprintf(w, "%s\t%s\t%s\n", u.Slug, u.Name, u.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

var getUnionCmd = &cobra.Command{
	Use:   "get [slug]",
	Short: "Show a union by slug",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := new(types.Union)
		if err := newAPIClient().do(cmd.Context(), http.MethodGet, "/api/v0/unions/"+args[0], nil, u); err != nil {
			return fmt.Errorf("failed to get union: %w", err)
		}

		fmt.Printf("Name: %s\nSlug: %s\nCreated by: %s\n", u.Name, u.Slug, u.CreatedBy)
		if u.Description != nil {
			fmt.Printf("Description: %s\n", *u.Description)
		}
		return nil
	},
}

var renameUnionCmd = &cobra.Command{
	Use:   "rename [slug] [name]",
	Short: "Rename a union, keeping its slug",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := new(types.Union)
		if err := newAPIClient().do(cmd.Context(), http.MethodPatch, "/api/v0/unions/"+args[0], map[string]any{"name": args[1]}, u); err != nil {
			return fmt.Errorf("failed to rename union: %w", err)
		}

		fmt.Printf("Union renamed: %s (slug: %s)\n", u.Name, u.Slug)
		return nil
	},
}

func init() {
	createUnionCmd.Flags().String("description", "", "Union description")

	unionCmd.AddCommand(createUnionCmd)
	unionCmd.AddCommand(listUnionsCmd)
	unionCmd.AddCommand(getUnionCmd)
	unionCmd.AddCommand(renameUnionCmd)
	rootCmd.AddCommand(unionCmd)
}
