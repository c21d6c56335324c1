package ui

import (
	"fmt"
	"io"
	"log/slog"
	"path"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/tartampluch/go-datespinner/internal/config"
)

// showExportDialog asks for a destination and writes the selected date with write.
func (app *DateSpinnerApp) showExportDialog(fileName string, write func(io.Writer) error) {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			app.showError(err)
			return
		}
		if wc == nil {
			return // Cancelled
		}

		err = write(wc)
		if cerr := wc.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			slog.Error(config.ErrWriteExport,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyFile, wc.URI().Path(),
				config.LogKeyError, err,
			)
			app.showError(fmt.Errorf("%s: %w", config.ErrWriteExport, err))
			return
		}

		slog.Info(config.MsgExported,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyFile, wc.URI().Path(),
		)
		app.App.SendNotification(fyne.NewNotification(config.AppName,
			app.Catalog.Message(app.Language, config.TKeyNotifExported, map[string]any{"File": wc.URI().Name()})))
	}, app.Window)
	d.SetFileName(fileName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{path.Ext(fileName)}))
	d.Show()
}

// showImportDialog lets the user pick a vCard file and imports its birthday.
func (app *DateSpinnerApp) showImportDialog() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			app.showError(err)
			return
		}
		if rc == nil {
			return // Cancelled
		}
		defer func() {
			_ = rc.Close()
		}()

		if err := app.ImportVCard(rc); err != nil {
			slog.Warn(config.ErrVCardParse,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyFile, rc.URI().Path(),
				config.LogKeyError, err,
			)
			app.showError(err)
		}
	}, app.Window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF, config.ExtVCard}))
	d.Show()
}

func (app *DateSpinnerApp) showError(err error) {
	if app.Window == nil {
		return
	}
	dialog.ShowError(err, app.Window)
}
