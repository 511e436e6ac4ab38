package cassels

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(message.MatchLanguage("en"))

// Tally counts the tuples a worker examined and where each one left the cascade.
type Tally struct {
	Checked uint64
	Stages  [numStages]uint64
}

func (t *Tally) Record(s Stage) {
	t.Checked++
	t.Stages[s]++
}

func (t *Tally) Add(u Tally) {
	t.Checked += u.Checked
	for i, c := range u.Stages {
		t.Stages[i] += c
	}
}

// Survivors returns the number of tuples that passed every stage.
func (t Tally) Survivors() uint64 {
	return t.Stages[Survived]
}

// MarshalLogObject renders the counts with thousands separators.
func (t Tally) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("checked", printer.Sprintf("%d", t.Checked))
	for s := Conjugation; s < numStages; s++ {
		enc.AddString(s.String(), printer.Sprintf("%d", t.Stages[s]))
	}
	enc.AddString(Survived.String(), printer.Sprintf("%d", t.Stages[Survived]))
	return nil
}

func tallyField(t Tally) zap.Field {
	return zap.Object("tally", t)
}
