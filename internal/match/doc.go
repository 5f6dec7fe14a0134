// Package match resolves destination fields against source fields.
//
// A destination field is resolved by an ordered list of strategies. Each
// strategy either produces a Bridge describing where the value comes from, or
// declines. The first strategy that does not decline wins.
//
// Key functions:
//   - SplitPascalCase: splits "BarName" into "Bar", "Name"
//   - Direct: matches fields with equal name and type
//   - Association: flattens "BarName" onto source field Bar and its member Name
//   - NewAnalyzer: runs strategies in order for each destination field
//   - Suggest: ranks known names by similarity for error messages
package match
