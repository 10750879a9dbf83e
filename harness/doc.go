// Package harness black-box tests command-line programs.
//
// A World runs shell commands inside a per-test sandbox directory, captures
// their stdout, stderr and exit status, and checks files the commands leave
// behind:
//
//	w := harness.NewWorld(t)
//	w.CreateFile("greeting.txt", "hello world")
//	result := w.Run("cat greeting.txt")
//	harness.AssertStdoutContains(t, result, "hello world")
//
// Commands starting with ruby, or with a well-known ruby script such as
// rspec or rake, are routed through the selected rvm ruby (see UseRVM).
//
// Environment variables honored:
//   - GOTGEMS: skip gemset resets and gem installs when set
//   - ARUBA_DEBUG: enable debug logging
package harness
