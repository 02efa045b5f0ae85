package opsheet

// FindTaxAdvantagedAccount returns the first tax-advantaged account of the list.
//
// It never falls back to another account: when none matches the error is a
// *MissingReferenceError wrapping ErrNoTaxAdvantagedAccount.
func FindTaxAdvantagedAccount(accounts []Account) (AccountID, error) {
	for _, a := range accounts {
		if a.Type == TaxAdvantaged {
			return a.ID, nil
		}
	}
	return "", &MissingReferenceError{
		What: "account of type " + TaxAdvantaged.String(),
		Err:  ErrNoTaxAdvantagedAccount,
	}
}
