package importer

import "github.com/centavo-dev/centavo/internal/model"

// ConfirmRecords converts reviewed lines into transactions ready to be
// stored. Lines flagged as duplicates are skipped. IDs are left zero for
// the store to assign.
func ConfirmRecords(lines []model.ParsedLine, accountType model.AccountType) []model.Transaction {
	var txns []model.Transaction
	for _, line := range lines {
		if line.IsDuplicate {
			continue
		}
		txns = append(txns, model.Transaction{
			Description: line.Description,
			Detail:      line.Detail,
			Amount:      line.Amount,
			Currency:    line.Currency,
			Type:        line.Type,
			Date:        line.Date,
			Source:      model.SourceImport,
			AccountType: accountType,
			Assignment:  line.Assignment.Clone(),
			RawText:     line.RawText,
		})
	}
	return txns
}
