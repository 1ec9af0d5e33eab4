package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/wharflab/semvet/internal/file"
)

func reportWriter() (io.Writer, func() error, error) {
	writer, closer, err := file.GetWriter(afero.NewOsFs(), os.Stdout, appConfig.File)
	if err != nil {
		return nil, func() error { return nil }, err
	}

	return writer, func() error {
		err := closer()
		if appConfig.File != "" && !appConfig.Quiet {
			fmt.Printf("Report written to %q\n", appConfig.File)
		}
		return err
	}, nil
}
