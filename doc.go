// Package opsheet turns a brokerage account's operation history into ledger rows.
//
// The broker reports operations (trades, dividends, taxes, commissions, deposits
// and withdrawals) newest first, each trade carrying its own list of partial
// fills. opsheet reduces that stream into a few well-defined report shapes:
//   - Trade history: the trades of a single instrument with their weighted price.
//   - Ledger: every operation of the account with commission and net settlement.
//   - Tax-advantaged ledger: the same for the tax-advantaged (IIS) account.
//   - Holdings: current positions valued at purchase cost and current value.
//
// The package never talks to the network itself. Data comes from a Broker, the
// tinkoff subpackage provides the REST implementation, and the cmd subpackage
// wires everything into the `opsheet` command-line tool.
package opsheet
