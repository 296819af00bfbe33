package main

import (
	_ "embed"
	"os"
	"time"

	"github.com/seqview/seqview/pkg/search"
	"github.com/sirupsen/logrus"
)

var patterns = []string{
	`Not marble nor the gilded monuments`,
	`besmear'd with sluttish time`,
	`baz_DOES_NOT_EXIST`,
	`Shall I compare thee to a summer's day?`,
	`sings hymns at heaven's gate`,
	`bar_DOES_NOT_EXIST`,
	`THE ENDING DOOM`,
	`all-oblivious enmity`,
	`foo_DOES_NOT_EXIST`,
	`my state with kings.`,
}

//go:embed sonnets.txt
var text string

func main() {
	logrus.SetOutput(os.Stdout)

	searchers := []search.Searcher{
		search.NewHorspool(),
		search.NewHorspoolFold(),
		search.NewBruteForce(),
	}
	for _, s := range searchers {
		timeSearcher(s)
	}
}

func timeSearcher(s search.Searcher) {
	logrus.Infof("%s", s)
	t1 := time.Now()
	for i := range patterns {
		t3 := time.Now()
		n := s.FindIndexString(text, patterns[i])
		logrus.Infof("found %q at index %d (took %.6fs)", patterns[i], n, time.Since(t3).Seconds())
	}
	t2 := time.Since(t1)
	logrus.Infof("took %.6fs, %dns", t2.Seconds(), t2.Nanoseconds())
}
