package kernel

import "fmt"

// report writes a diagnostic line through the kernel's logger and, in a
// strict build, panics instead of continuing. This is the upgrade
// spec.md §7 describes for invariant breaches and invalid arguments:
// "assertions / debug traps" in a modern systems language, selected by
// Kernel.strict rather than always logging and carrying on. Grounded in
// the teacher's single-shot panic handler, generalized from "only ever
// one panic" to "strict vs. lenient invariant enforcement."
func (k *Kernel) report(kind, msg string) {
	line := fmt.Sprintf("kernel: %s: %s", kind, msg)
	if k.logger != nil {
		k.logger.WriteLineString(line)
	}
	if k.strict {
		panic(line)
	}
}

func (k *Kernel) reportInvalidArgument(msg string) { k.report("invalid argument", msg) }
func (k *Kernel) reportInvariantBreach(msg string) { k.report("invariant breach", msg) }
