package utils

import (
	"time"

	"github.com/briandowns/spinner"
)

var loadingSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)

func StartSpinner() {
	loadingSpinner.Suffix = " Analyzing GCP infrastructure..."
	loadingSpinner.Start()
}

func StopSpinner() {
	if loadingSpinner.Active() {
		loadingSpinner.Stop()
	}
}
