// Package ofxparser parses OFX and QFX statement files into the shared
// transaction shape using ofxgo. QFX is OFX with Intuit extension tags and
// goes through the same path.
package ofxparser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"quillbooks/bookpipe/internal/logging"
	"quillbooks/bookpipe/internal/models"
	"quillbooks/bookpipe/internal/parsererror"
)

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	openTagRegex  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes formatting quirks banks ship in SGML-style OFX files:
// leading blank lines before the header, mixed-case SEVERITY values, and
// opening tags missing their closing bracket.
func preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	content = openTagRegex.ReplaceAllString(content, "$1>")
	return content
}

// Parse reads OFX/QFX content and returns normalized transactions. The
// sign convention of OFX (negative = debit) matches ours, so amounts pass
// through unchanged. A statement that fails to convert is skipped with a
// warning; only a file-level parse failure is an error.
func Parse(content, fileName string, log logging.Logger) ([]models.Transaction, error) {
	if log == nil {
		log = logging.Default()
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocess(content)))
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FileName:       fileName,
			ExpectedFormat: "OFX/QFX",
			Msg:            err.Error(),
		}
	}

	var transactions []models.Transaction

	for _, msg := range resp.Bank {
		stmt, ok := msg.(*ofxgo.StatementResponse)
		if ok && stmt.BankTranList != nil {
			for _, ofxTx := range stmt.BankTranList.Transactions {
				transactions = append(transactions, convert(ofxTx))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		stmt, ok := msg.(*ofxgo.CCStatementResponse)
		if ok && stmt.BankTranList != nil {
			for _, ofxTx := range stmt.BankTranList.Transactions {
				transactions = append(transactions, convert(ofxTx))
			}
		}
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: fileName},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Debug("Parsed OFX statement")

	return transactions, nil
}

// convert maps one OFX transaction record to the shared shape.
func convert(ofxTx ofxgo.Transaction) models.Transaction {
	amount, err := decimal.NewFromString(ofxTx.TrnAmt.String())
	if err != nil {
		// Fall back through the rational representation; zero only if the
		// record is truly unusable.
		f, _ := ofxTx.TrnAmt.Float64()
		amount = decimal.NewFromFloat(f)
	}

	return models.Transaction{
		ID:          string(ofxTx.FiTID),
		Date:        ofxTx.DtPosted.Time,
		Description: description(ofxTx),
		Amount:      amount,
		Category:    models.CategoryUncategorized,
		Confidence:  0,
	}
}

// description picks the most informative text for a record: the payee name
// when present, otherwise NAME, falling back to MEMO when NAME is a generic
// placeholder like "DEBIT".
func description(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}

	name := strings.TrimSpace(string(tx.Name))
	if tx.Memo != "" && isGeneric(name) {
		name = strings.TrimSpace(string(tx.Memo))
	}
	if name == "" {
		name = strings.TrimSpace(fmt.Sprintf("%v", tx.TrnType))
	}
	return name
}

func isGeneric(name string) bool {
	switch strings.ToUpper(name) {
	case "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE":
		return true
	}
	return false
}
