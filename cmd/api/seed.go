package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/taiwoajasa245/sabbath-lesson-api/internal/language"
	"github.com/taiwoajasa245/sabbath-lesson-api/pkg/validation"
)

var defaultLanguages = []language.LanguageInput{
	{Name: "English", Code: "en", Flag: "🇺🇸"},
	{Name: "Español", Code: "es", Flag: "🇪🇸"},
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default languages if they are missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := bootstrap(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			validator, err := validation.NewValidator()
			if err != nil {
				return err
			}
			svc := language.NewLanguageService(language.NewRepository(a.db), validator, a.log)
			return seedLanguages(ctx, &svc, cmd.OutOrStdout())
		},
	}
}

func seedLanguages(ctx context.Context, svc *language.LanguageService, out io.Writer) error {
	for _, input := range defaultLanguages {
		l, created, err := svc.Ensure(ctx, input)
		if err != nil {
			return fmt.Errorf("seed language %q: %w", input.Code, err)
		}
		if created {
			fmt.Fprintf(out, "created %s (%s) with id %d\n", l.Name, l.Code, l.ID)
			continue
		}
		fmt.Fprintf(out, "%s (%s) already exists\n", l.Name, l.Code)
	}
	return nil
}
