package ofxparser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quillbooks/bookpipe/internal/logging"
	"quillbooks/bookpipe/internal/models"
	"quillbooks/bookpipe/internal/parsererror"
)

const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20260301120000[0:GMT]
<DTEND>20260331120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260314120000[0:GMT]
<TRNAMT>-25.50
<FITID>2026031401
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260320120000[0:GMT]
<TRNAMT>-125.00
<FITID>2026032001
<NAME>DEBIT
<MEMO>WHOLE FOODS MARKET
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20260331120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>USD
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20260301120000[0:GMT]
<DTEND>20260331120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260310120000[0:GMT]
<TRNAMT>-45.99
<FITID>CC2026031001
<NAME>AMAZON.COM*RT4Y7HG2
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-500.00
<DTASOF>20260331120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParse_BankStatement(t *testing.T) {
	txns, err := Parse(sampleBankOFX, "statement.ofx", logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, txns, 2)

	assert.Equal(t, "2026031401", txns[0].ID)
	assert.Equal(t, "STARBUCKS STORE #1234", txns[0].Description)
	assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("-25.50")), "got %s", txns[0].Amount)
	assert.Equal(t, 2026, txns[0].Date.Year())
	assert.Equal(t, models.CategoryUncategorized, txns[0].Category)
	assert.Zero(t, txns[0].Confidence)

	assert.Equal(t, "WHOLE FOODS MARKET", txns[1].Description,
		"generic NAME falls back to MEMO")
}

func TestParse_CreditCardStatement(t *testing.T) {
	txns, err := Parse(sampleCreditCardOFX, "card.qfx", logging.NewMockLogger())
	require.NoError(t, err)
	require.Len(t, txns, 1)

	assert.Equal(t, "AMAZON.COM*RT4Y7HG2", txns[0].Description)
	assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("-45.99")))
}

func TestParse_ToleratesBankQuirks(t *testing.T) {
	// Leading blank lines and mixed-case SEVERITY show up in real exports.
	quirky := "\r\n\n" + sampleBankOFX

	txns, err := Parse(quirky, "statement.ofx", logging.NewMockLogger())
	require.NoError(t, err)
	assert.Len(t, txns, 2)
}

func TestParse_InvalidContent(t *testing.T) {
	_, err := Parse("definitely not ofx", "statement.ofx", logging.NewMockLogger())
	require.Error(t, err)

	var formatErr *parsererror.InvalidFormatError
	assert.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "statement.ofx", formatErr.FileName)
}

func TestPreprocess_AddsMissingBrackets(t *testing.T) {
	in := "<STMTTRN\n<TRNAMT>-1.00\n"
	out := preprocess(in)
	assert.Contains(t, out, "<STMTTRN>")
}

func TestPreprocess_UppercasesSeverity(t *testing.T) {
	out := preprocess("<SEVERITY>Info</SEVERITY>")
	assert.Contains(t, out, "<SEVERITY>INFO</SEVERITY>")
}
