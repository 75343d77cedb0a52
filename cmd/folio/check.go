package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/i18n"
)

func newCheckCmd(cfgFile *string) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate content files and report translation gaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}
			contentFS := folio.DefaultContentFS()
			if dir := v.GetString("content_dir"); dir != "" {
				contentFS = os.DirFS(dir)
			}
			bundle, err := loadBundle(v.GetString("locales_dir"))
			if err != nil {
				return err
			}
			return runCheck(cmd, contentFS, bundle, strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a translation is missing")
	return cmd
}

func loadBundle(dir string) (*i18n.Bundle, error) {
	if dir == "" {
		return i18n.DefaultBundle()
	}
	return i18n.LoadBundle(os.DirFS(dir))
}

func runCheck(cmd *cobra.Command, contentFS fs.FS, bundle *i18n.Bundle, strict bool) error {
	content, err := folio.LoadContent(contentFS)
	if err != nil {
		return err
	}
	cat := content.Catalog
	cmd.Printf("%d projects\n", cat.Len())
	for _, c := range cat.Categories() {
		cmd.Printf("  %-12s %d\n", c, len(cat.ByCategory(string(c))))
	}
	cmd.Printf("profile: %s <%s>\n", content.Profile.Name, content.Profile.Email)

	for _, lang := range i18n.Supported {
		cmd.Printf("%s (%s): %d keys\n", lang.Name(), lang, len(bundle.Keys(lang)))
	}
	if err := bundle.Validate(); err != nil {
		if strict || !errors.Is(err, i18n.ErrIncomplete) {
			return err
		}
		cmd.PrintErrf("warning: %v\n", err)
	}
	return nil
}
