package parser

import (
	"quillbooks/bookpipe/internal/csvparser"
	"quillbooks/bookpipe/internal/logging"
	"quillbooks/bookpipe/internal/models"
	"quillbooks/bookpipe/internal/ofxparser"
)

// Result is the outcome of parsing one statement file.
type Result struct {
	Format       Format
	Transactions []models.Transaction
	// Mapping is only populated for CSV input; OFX and QFX are
	// self-describing.
	Mapping *models.ColumnMapping
}

// Parse detects the format of the given file content and runs the matching
// parser. Row-level problems are recovered inside the format parsers; an
// error here means the file as a whole could not be read.
func Parse(content, fileName string, log logging.Logger) (*Result, error) {
	if log == nil {
		log = logging.Default()
	}

	format := Detect(fileName, content)
	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: fileName},
		logging.Field{Key: logging.FieldFormat, Value: string(format)},
	).Debug("Detected statement format")

	switch format {
	case FormatOFX, FormatQFX:
		txns, err := ofxparser.Parse(content, fileName, log)
		if err != nil {
			return nil, err
		}
		return &Result{Format: format, Transactions: txns}, nil
	default:
		txns, mapping, err := csvparser.Parse(content, log)
		if err != nil {
			return nil, err
		}
		return &Result{Format: FormatCSV, Transactions: txns, Mapping: mapping}, nil
	}
}
