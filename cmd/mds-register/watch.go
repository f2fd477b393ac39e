// File: cmd/mds-register/watch.go
// Author: Andrei Batyrov <arbatyrov@edu.hse.ru>

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/andrewha/mds2022/internal/term"
)

var (
	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Reload the register whenever its file changes.",
		Long: `
Reload the register whenever its file changes and print the record
count after every reload. Stop with CTRL+C.

The watch covers the directory holding the file, so the register is
also picked up when an editor replaces it with a fresh copy instead of
writing in place.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()

			target := filepath.Clean(registerFile)
			if err := watcher.Add(filepath.Dir(target)); err != nil {
				return fmt.Errorf("cannot watch %s: %w", filepath.Dir(target), err)
			}

			reload := func() {
				reg, err := loadRegister()
				if err != nil {
					fmt.Fprintln(os.Stderr, paint.Paint(term.Red, err.Error()))
					return
				}
				printCount(os.Stdout, reg.Len())
			}
			reload()

			for {
				select {
				case <-cmd.Context().Done():
					return nil
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(event.Name) != target {
						continue
					}
					if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
						reload()
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					fmt.Fprintln(os.Stderr, paint.Paint(term.Red, err.Error()))
				}
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(watchCmd)
}
