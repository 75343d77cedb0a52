package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/eringen/folio"
	"github.com/eringen/folio/i18n"
)

// loadConfig reads the site configuration from the environment, falling
// back to the optional config file. Keys match the environment names
// (SITE_NAME, SITE_URL, ...), lower-cased in the file.
func loadConfig(cfgFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	}
	return v, nil
}

func siteConfig(v *viper.Viper) folio.SiteConfig {
	return folio.SiteConfig{
		Name:               v.GetString("site_name"),
		URL:                v.GetString("site_url"),
		Description:        v.GetString("site_description"),
		Addr:               v.GetString("addr"),
		DatabasePath:       v.GetString("database_path"),
		AdminPassword:      v.GetString("admin_password"),
		AdminPasswordHash:  v.GetString("admin_password_hash"),
		SessionSecret:      v.GetString("session_secret"),
		CookieSecure:       v.GetBool("cookie_secure"),
		FeaturedCount:      v.GetInt("featured_count"),
		PreviewInterval:    v.GetDuration("preview_interval"),
		PreviewMaxDuration: v.GetDuration("preview_max_duration"),
		LogLevel:           v.GetString("log_level"),
		SMTP: folio.SMTPConfig{
			Host: v.GetString("smtp_host"),
			Port: v.GetInt("smtp_port"),
			User: v.GetString("smtp_user"),
			Pass: v.GetString("smtp_pass"),
			From: v.GetString("smtp_from"),
		},
		ContactTo: v.GetString("contact_to"),
	}
}

// siteOptions turns the directory settings into App options.
func siteOptions(v *viper.Viper) ([]folio.Option, error) {
	var opts []folio.Option
	if dir := v.GetString("content_dir"); dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("content dir: %w", err)
		}
		opts = append(opts, folio.WithContent(os.DirFS(dir)))
	}
	if dir := v.GetString("locales_dir"); dir != "" {
		bundle, err := i18n.LoadBundle(os.DirFS(dir))
		if err != nil {
			return nil, err
		}
		opts = append(opts, folio.WithBundle(bundle))
	}
	if dir := v.GetString("static_dir"); dir != "" {
		opts = append(opts, folio.WithStaticDir(dir))
	}
	return opts, nil
}
