package cmd

import (
	"github.com/etnz/pnlsheet"
	"github.com/etnz/pnlsheet/docs"
	"github.com/etnz/pnlsheet/renderer"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// topics predicts documentation topics.
func topics() complete.Predictor {
	all, err := docs.GetAllTopics()
	if err != nil {
		return predict.Nothing
	}
	return predict.Set(append(all, "readme"))
}

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	statuses := predict.Set(pnlsheet.StatusCodes())
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":       predict.Files("*.yaml"),
			"store":        predict.Set{"file", "redis", "memory"},
			"file":         predict.Files("*.json"),
			"redis-addr":   predict.Something,
			"metrics-file": predict.Files("*"),
			"v":            predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"show": {Flags: map[string]complete.Predictor{"raw": predict.Nothing}},
			"add": {Flags: map[string]complete.Predictor{
				"pair":   predict.Something,
				"amount": predict.Something,
				"profit": predict.Something,
				"status": statuses,
			}},
			"set":    {Args: predict.Set{"pair", "amount", "profit", "status"}},
			"rm":     {Args: predict.Something},
			"import": {Flags: map[string]complete.Predictor{"f": predict.Files("*")}},
			"export": {Flags: map[string]complete.Predictor{
				"format": predict.Set(renderer.Formats()),
				"o":      predict.Files("*"),
			}},
			"date":  {Args: predict.Set{"today"}},
			"reset": {},
			"query": {Args: predict.Set{"$.date", "$.rows", "$.rows[*].pair"}},
			"topic": {Args: topics()},
		},
	}
}
