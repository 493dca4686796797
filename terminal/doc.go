// Package terminal hosts the ballpit on a tcell screen.
//
// Features:
//   - Half-block output: each cell carries two square pixels, top as foreground
//   - Mouse motion reporting mapped to pixel coordinates
//   - Focus reporting used as host visibility
//   - Clean terminal restoration on exit/panic
package terminal
