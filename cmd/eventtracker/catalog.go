package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/limbo/eventtracker/pkg/entity"
)

var (
	categoryFlag string
	assumeYes    bool
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the events of the account",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Create, rename or delete events",
}

var categoryCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Add an event with no dates",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryCreate,
}

var categoryRenameCmd = &cobra.Command{
	Use:   "rename [old] [new]",
	Short: "Rename an event, keeping its dates and position",
	Args:  cobra.ExactArgs(2),
	RunE:  runCategoryRename,
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete an event and all its dates",
	Long:  "Delete an event and all its dates. The last remaining event cannot be deleted.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoryDelete,
}

var datesCmd = &cobra.Command{
	Use:   "dates",
	Short: "Record and manage the dates of an event",
}

var datesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the recorded dates in the order they were added",
	Args:  cobra.NoArgs,
	RunE:  runDatesList,
}

var datesAddCmd = &cobra.Command{
	Use:   "add [DD.MM.YYYY...]",
	Short: "Record dates, today when none is given",
	RunE:  runDatesAdd,
}

var datesRemoveCmd = &cobra.Command{
	Use:   "remove [DD.MM.YYYY]",
	Short: "Remove a recorded date",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatesRemove,
}

var datesEditCmd = &cobra.Command{
	Use:   "edit [old] [new]",
	Short: "Replace a recorded date",
	Args:  cobra.ExactArgs(2),
	RunE:  runDatesEdit,
}

func init() {
	categoryDeleteCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")
	datesRemoveCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "do not ask for confirmation")
	for _, c := range []*cobra.Command{datesListCmd, datesAddCmd, datesRemoveCmd, datesEditCmd} {
		addCategoryFlag(c)
	}
	addFormatFlag(categoriesCmd)
	addFormatFlag(datesListCmd)

	categoryCmd.AddCommand(categoryCreateCmd, categoryRenameCmd, categoryDeleteCmd)
	datesCmd.AddCommand(datesListCmd, datesAddCmd, datesRemoveCmd, datesEditCmd)
}

func addCategoryFlag(c *cobra.Command) {
	c.Flags().StringVarP(&categoryFlag, "category", "c", "", "event to work on (default: the first one)")
}

// openedApp builds the app and loads the signed-in account's catalog.
func openedApp(cmd *cobra.Command) (*app, error) {
	a, err := newApp(cmd)
	if err != nil {
		return nil, err
	}
	if err = a.openCatalog(cmd.Context()); err != nil {
		return nil, err
	}
	return a, nil
}

func runCategories(cmd *cobra.Command, args []string) error {
	a, err := openedApp(cmd)
	if err != nil {
		return err
	}
	names := a.catalog.ListCategories()
	return render(cmd.OutOrStdout(), names, func(w io.Writer) error {
		for _, name := range names {
			fmt.Fprintln(w, name)
		}
		return nil
	})
}

func runCategoryCreate(cmd *cobra.Command, args []string) error {
	a, err := openedApp(cmd)
	if err != nil {
		return err
	}
	if err = a.catalog.CreateCategory(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created %q\n", args[0])
	return nil
}

func runCategoryRename(cmd *cobra.Command, args []string) error {
	a, err := openedApp(cmd)
	if err != nil {
		return err
	}
	if err = a.catalog.RenameCategory(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Renamed %q to %q\n", args[0], args[1])
	return nil
}

func runCategoryDelete(cmd *cobra.Command, args []string) error {
	a, err := openedApp(cmd)
	if err != nil {
		return err
	}
	if !assumeYes && !a.prompt.Confirm(fmt.Sprintf("Delete %q and all its dates?", args[0])) {
		return nil
	}
	if err = a.catalog.DeleteCategory(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", args[0])
	return nil
}

type datesView struct {
	Category string   `json:"category" yaml:"category"`
	Dates    []string `json:"dates" yaml:"dates"`
	Skipped  []string `json:"skipped" yaml:"skipped"`
}

func runDatesList(cmd *cobra.Command, args []string) error {
	a, err := openedApp(cmd)
	if err != nil {
		return err
	}
	category, err := a.activeCategory(categoryFlag)
	if err != nil {
		return err
	}
	dates, err := a.catalog.Dates(category)
	if err != nil {
		return err
	}
	series, err := a.catalog.ParseReport(category)
	if err != nil {
		return err
	}
	view := datesView{Category: category, Dates: dates, Skipped: append([]string{}, series.Skipped...)}
	return render(cmd.OutOrStdout(), view, func(w io.Writer) error {
		for _, d := range view.Dates {
			fmt.Fprintln(w, d)
		}
		if len(view.Skipped) > 0 {
			fmt.Fprintf(w, "%d of %d entries are not DD.MM.YYYY and are left out of reports\n",
				len(view.Skipped), len(view.Dates))
		}
		return nil
	})
}

func runDatesAdd(cmd *cobra.Command, args []string) error {
	a, err := openedApp(cmd)
	if err != nil {
		return err
	}
	category, err := a.activeCategory(categoryFlag)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{entity.FormatDate(a.engine.Today())}
	}
	for _, raw := range args {
		if err = a.catalog.AddDate(cmd.Context(), category, raw); err != nil {
			return fmt.Errorf("%s: %w", raw, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for %q\n", raw, category)
	}
	return nil
}

func runDatesRemove(cmd *cobra.Command, args []string) error {
	a, err := openedApp(cmd)
	if err != nil {
		return err
	}
	category, err := a.activeCategory(categoryFlag)
	if err != nil {
		return err
	}
	if !assumeYes && !a.prompt.Confirm(fmt.Sprintf("Remove %s from %q?", args[0], category)) {
		return nil
	}
	return a.catalog.RemoveDate(cmd.Context(), category, args[0])
}

func runDatesEdit(cmd *cobra.Command, args []string) error {
	a, err := openedApp(cmd)
	if err != nil {
		return err
	}
	category, err := a.activeCategory(categoryFlag)
	if err != nil {
		return err
	}
	if err = a.catalog.EditDate(cmd.Context(), category, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Changed %s to %s in %q\n", args[0], args[1], category)
	return nil
}
