package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"lexitag/internal/clix"
	"lexitag/internal/dictfile"
	"lexitag/internal/models"
	"lexitag/internal/services"
)

var categoryDictPath string

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Inspect and edit dictionary files",
	Long: `Manages the YAML dictionary files consumed by 'lexitag classify --dict'.
Editing commands read the file (or start from the built-in categories when
it does not exist yet), apply the change, and write the file back.`,
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and their keyword counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := loadDictionaryCategories()
		if err != nil {
			return err
		}
		if len(cats) == 0 {
			fmt.Println("No categories defined.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Category", "Keywords"})
		table.SetBorder(false)
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, cat := range cats {
			table.Append([]string{cat.Name, strconv.Itoa(len(cat.Keywords))})
		}
		table.Render()
		return nil
	},
}

var categoryShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show all keywords of one category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cats, err := loadDictionaryCategories()
		if err != nil {
			return err
		}
		for _, cat := range cats {
			if cat.Name == args[0] {
				fmt.Printf("%s (%d keywords):\n", cat.Name, len(cat.Keywords))
				for _, kw := range cat.Keywords {
					fmt.Printf("  - %s\n", kw)
				}
				return nil
			}
		}
		return fmt.Errorf("category %q: %w", args[0], models.ErrNotFound)
	},
}

var categoryAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add or overwrite a category in a dictionary file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keywords, err := clix.ParseKeywords(cmd.Flags())
		if err != nil {
			return err
		}
		return editDictionary(cmd, func(dict *services.DictionaryService) error {
			cat, err := dict.AddCategory(cmd.Context(), args[0], keywords)
			if err != nil {
				return err
			}
			fmt.Printf("Saved category %q with %d keywords.\n", cat.Name, len(cat.Keywords))
			return nil
		})
	},
}

var categoryRemoveCmd = &cobra.Command{
	Use:   "remove [name]",
	Short: "Remove a category from a dictionary file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editDictionary(cmd, func(dict *services.DictionaryService) error {
			if err := dict.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed category %q.\n", args[0])
			return nil
		})
	},
}

// loadDictionaryCategories reads the --dict file, or falls back to the
// built-in categories when the file does not exist.
func loadDictionaryCategories() ([]models.Category, error) {
	if _, err := os.Stat(categoryDictPath); errors.Is(err, os.ErrNotExist) {
		return services.SeedCategories, nil
	}
	return dictfile.Load(categoryDictPath)
}

// editDictionary loads the dictionary file into a fresh store, applies the
// edit, and saves the result back to the file.
func editDictionary(cmd *cobra.Command, edit func(*services.DictionaryService) error) error {
	ctx := cmd.Context()
	appInstance, err := GetAppFromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to get app instance: %w", err)
	}

	dictPath := ""
	if _, err := os.Stat(categoryDictPath); err == nil {
		dictPath = categoryDictPath
	}
	dict, err := appInstance.NewDictionary(ctx, dictPath)
	if err != nil {
		return fmt.Errorf("failed to load dictionary: %w", err)
	}

	if err := edit(dict); err != nil {
		return err
	}

	cats, err := dict.ListCategories(ctx)
	if err != nil {
		return err
	}
	if err := dictfile.Save(categoryDictPath, cats); err != nil {
		return err
	}
	fmt.Printf("Dictionary written to %s (%d categories).\n", categoryDictPath, len(cats))
	return nil
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryShowCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRemoveCmd)

	categoryCmd.PersistentFlags().StringVarP(&categoryDictPath, "dict", "d", "dictionary.yaml", "Dictionary file to read and write")
	categoryAddCmd.Flags().String("keywords", "", "Comma-separated keywords for the category")
}
