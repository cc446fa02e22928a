package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/absoluteskid/fxputil-go/pkg"
	"github.com/absoluteskid/fxputil-go/pkg/fxp"
)

var (
	dbCode       string
	dbName       string
	dbCompany    string
	dbNewCode    string
	dbNewName    string
	dbNewCompany string
	dbUpdateURL  string
)

func newDBCommand() *cobra.Command {
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "Manage the plugin signature table",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every registered signature",
		Run:   runDBList,
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add or overwrite a signature",
		Run:   runDBAdd,
	}
	addCmd.Flags().StringVarP(&dbCode, "code", "c", "", "Plugin code, exactly 4 characters (required)")
	addCmd.Flags().StringVarP(&dbName, "name", "n", "", "Plugin name (required)")
	addCmd.Flags().StringVarP(&dbCompany, "company", "p", "", "Company name (required)")
	mustFlag(addCmd.MarkFlagRequired("code"))
	mustFlag(addCmd.MarkFlagRequired("name"))
	mustFlag(addCmd.MarkFlagRequired("company"))

	removeCmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a signature",
		Run:   runDBRemove,
	}
	removeCmd.Flags().StringVarP(&dbCode, "code", "c", "", "Plugin code of the entry to remove (required)")
	mustFlag(removeCmd.MarkFlagRequired("code"))

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Replace the code, name and company of an existing signature",
		Run:   runDBEdit,
	}
	editCmd.Flags().StringVarP(&dbCode, "code", "c", "", "Current plugin code (required)")
	editCmd.Flags().StringVar(&dbNewCode, "new-code", "", "New plugin code, exactly 4 characters (required)")
	editCmd.Flags().StringVar(&dbNewName, "name", "", "New plugin name (required)")
	editCmd.Flags().StringVar(&dbNewCompany, "company", "", "New company name (required)")
	mustFlag(editCmd.MarkFlagRequired("code"))
	mustFlag(editCmd.MarkFlagRequired("new-code"))
	mustFlag(editCmd.MarkFlagRequired("name"))
	mustFlag(editCmd.MarkFlagRequired("company"))

	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "Replace the local table with the upstream signature list",
		Run:   runDBUpdate,
	}
	updateCmd.Flags().StringVar(&dbUpdateURL, "url", "", "Signature list URL (defaults to the upstream list)")

	dbCmd.AddCommand(listCmd, addCmd, removeCmd, editCmd, updateCmd)
	return dbCmd
}

func runDBList(cmd *cobra.Command, args []string) {
	logger := newLogger()
	store := openStore(logger)

	records := store.All()
	_, _ = heading.Printf("%s (%d entries)\n", store.Path(), len(records))
	for _, rec := range records {
		fmt.Printf("  %-4s  %-24s %s\n", rec.Code, rec.Name, rec.Company)
	}
}

func runDBAdd(cmd *cobra.Command, args []string) {
	logger := newLogger()
	store := openStore(logger)

	if err := pkg.RegisterEntry(store, dbCode, dbName, dbCompany); err != nil {
		fatal(logger, "Failed to add signature", err)
	}
	_, _ = success.Printf("✅ Registered %q as %s / %s\n", dbCode, dbName, dbCompany)
}

func runDBRemove(cmd *cobra.Command, args []string) {
	logger := newLogger()
	store := openStore(logger)

	key, err := codeArg(dbCode)
	if err != nil {
		fatal(logger, "Bad plugin code", err)
	}
	if err := store.Remove(key); err != nil {
		fatal(logger, "Failed to remove signature", err)
	}
	_, _ = success.Printf("✅ Removed %q\n", dbCode)
}

func runDBEdit(cmd *cobra.Command, args []string) {
	logger := newLogger()
	store := openStore(logger)

	key, err := codeArg(dbCode)
	if err != nil {
		fatal(logger, "Bad plugin code", err)
	}
	newKey, err := codeArg(dbNewCode)
	if err != nil {
		fatal(logger, "Bad replacement code", err)
	}
	entry := fxp.Entry{Name: dbNewName, Company: dbNewCompany}
	if err := store.Edit(key, newKey, entry); err != nil {
		fatal(logger, "Failed to edit signature", err)
	}
	_, _ = success.Printf("✅ %q is now %q (%s / %s)\n", dbCode, dbNewCode, dbNewName, dbNewCompany)
}

func runDBUpdate(cmd *cobra.Command, args []string) {
	logger := newLogger()
	store := openStore(logger)

	count, err := store.Update(context.Background(), dbUpdateURL)
	if err != nil {
		fatal(logger, "Failed to update signature table", err)
	}
	_, _ = success.Printf("✅ Signature table updated, %d entries\n", count)
}

func codeArg(code string) ([4]byte, error) {
	var key [4]byte
	if len(code) != fxp.CodeSize {
		return key, fmt.Errorf("%w: got %d", fxp.ErrInvalidCodeLength, len(code))
	}
	copy(key[:], code)
	return key, nil
}
