// Package filesystem provides implementations of the types.FS interface.
//
// Two implementations exist:
//   - NewOS returns a pass-through to the real operating system filesystem,
//     used by the CLI.
//   - NewAferoFS wraps any afero.Fs, which lets tests run the full
//     materialization pipeline against afero.NewMemMapFs without touching
//     disk.
package filesystem
