package gdialog

import (
	"github.com/sqweek/dialog"
)

// Fatal shows a blocking native error box.
func Fatal(title string, err error) {
	dialog.Message("%v", err).Title(title).Error()
}
