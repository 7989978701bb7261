/*
File    : snlc/emit/preamble.go
Author  : yurzi
Contact : github.com/yurzi/snlc
*/
package emit

import "strings"

// Preamble is the runtime prelude every emitted artifact carries ahead of
// its translated program: a parametric read helper that pulls one line
// from standard input, trims it, parses it to the destination type, and
// aborts with a diagnostic on parse failure. Only this helper's contract
// is this project's concern; the rest of the runtime (the host compiler,
// its standard library) is an external collaborator.
const Preamble = `use std::io::{self, BufRead};

fn read<T: std::str::FromStr>() -> T {
    let mut line = String::new();
    io::stdin().lock().read_line(&mut line).expect("failed to read line");
    match line.trim().parse::<T>() {
        Ok(v) => v,
        Err(_) => {
            eprintln!("read: could not parse {:?} as the expected type", line.trim());
            std::process::exit(1);
        }
    }
}
`

// WrapMain composes a complete host source file: the Preamble, then a
// main() whose body is body (the text Emit or EmitError produced) with
// every non-empty line indented one level.
func WrapMain(body string) string {
	return Preamble + "\nfn main() {\n" + indentBlock(body) + "}\n"
}

func indentBlock(body string) string {
	body = strings.TrimSuffix(body, "\n")
	if body == "" {
		return ""
	}
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "    " + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
