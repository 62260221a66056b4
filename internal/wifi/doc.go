// Package wifi converts raw wireless scan output into risk-ranked network
// records.
//
// The pipeline has three stages:
//
//   - Scanner invokes the platform listing command (netsh on Windows,
//     nmcli on Linux) and captures its text output. This is the only
//     resource-bearing stage and the only one that can fail.
//   - ParseNetsh / ParseNmcli tokenize that text into RawEntry values.
//     Parsing is best effort: malformed lines are skipped, missing fields
//     stay empty. OS/locale glue lives here, away from the classifier.
//   - ClassifyAll maps RawEntry values to Network records, substituting
//     sentinels for absent fields and assigning each record a RiskTier
//     from its security descriptor. Classification is a pure function and
//     preserves input order.
package wifi
