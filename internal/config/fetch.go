package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"
)

// Fetch downloads a single preset file from src to dst. src is any
// go-getter address: a local path, an http(s) URL, or a forced getter
// such as "git::https://host/repo.git//presets/islands.toml".
func Fetch(ctx context.Context, src, dst string) error {
	if src == "" {
		return fmt.Errorf("fetch preset: empty source")
	}
	if _, err := FormatOf(dst); err != nil {
		return fmt.Errorf("fetch preset: %w", err)
	}

	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("fetch preset: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", filepath.Dir(dst), err)
	}

	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return fmt.Errorf("fetch preset %s: %w", src, err)
	}
	return nil
}
