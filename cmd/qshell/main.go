// Command qshell is an interactive driver for the ring queue. It exercises
// the public queue contract only and is not part of the correctness core.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/juju/errors"
	"github.com/juju/loggo/v2"

	ringqueue "github.com/timzifer/ring_queue"
	"github.com/timzifer/ring_queue/internal/telemetry"
)

var logger = loggo.GetLogger("qshell")

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	maxLen := flag.Int("max-len", 0, "bound the queue length (0: unbounded)")
	history := flag.String("history", "", "readline history file")
	flag.Parse()

	level := "INFO"
	if *verbose {
		level = "DEBUG"
	}
	if err := loggo.ConfigureLoggers("qshell=" + level); err != nil {
		fmt.Fprintln(os.Stderr, "qshell:", err)
		os.Exit(1)
	}

	if err := run(*maxLen, *history); err != nil {
		fmt.Fprintln(os.Stderr, "qshell:", err)
		os.Exit(1)
	}
}

func run(maxLen int, history string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "queue> ",
		HistoryFile:     history,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return errors.Annotate(err, "initialising readline")
	}
	defer rl.Close()

	sh := &shell{maxLen: maxLen, out: rl.Stdout()}
	defer sh.freeQueue()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Trace(err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		finish := telemetry.TraceOp()
		quit, err := sh.dispatch(fields[0], fields[1:])
		finish(err == nil)
		if quit {
			return nil
		}
		if err != nil {
			fmt.Fprintln(rl.Stderr(), "error:", err)
		}
	}
}

type shell struct {
	q      *ringqueue.Queue
	maxLen int
	out    io.Writer
}

func (sh *shell) dispatch(cmd string, args []string) (quit bool, err error) {
	logger.Debugf("dispatching %q %v", cmd, args)

	switch cmd {
	case "new":
		sh.freeQueue()
		sh.q = ringqueue.NewWithOptions(ringqueue.Options{MaxLen: sh.maxLen})
		logger.Debugf("created queue (max-len=%d)", sh.maxLen)
	case "free":
		sh.freeQueue()
	case "ih", "it":
		return false, sh.insert(cmd == "ih", args)
	case "rh", "rt":
		return false, sh.remove(cmd == "rh")
	case "size":
		fmt.Fprintln(sh.out, sh.q.Len())
	case "show":
		fmt.Fprintf(sh.out, "q = %v\n", sh.q.Snapshot())
	case "dm":
		if !sh.q.DeleteMiddle() {
			return false, errors.Errorf("delete-middle failed: queue absent or empty")
		}
	case "dedup":
		if !sh.q.DeleteDuplicates() {
			return false, errors.Errorf("delete-duplicates failed: queue absent")
		}
	case "swap":
		sh.q.SwapPairs()
	case "reverse":
		sh.q.Reverse()
	case "sort":
		sh.q.Sort()
	case "stats":
		ops, failures, average := telemetry.DefaultOpMetrics().Snapshot()
		fmt.Fprintf(sh.out, "ops=%d failures=%d avg=%v\n", ops, failures, average)
	case "help":
		fmt.Fprint(sh.out, usage)
	case "quit", "exit":
		return true, nil
	default:
		return false, errors.NotValidf("command %q", cmd)
	}
	return false, nil
}

func (sh *shell) insert(head bool, args []string) error {
	if len(args) == 0 {
		return errors.NotValidf("insert without a value")
	}
	count := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return errors.NotValidf("repeat count %q", args[1])
		}
		count = n
	}

	for i := 0; i < count; i++ {
		var ok bool
		if head {
			ok = sh.q.InsertHead(args[0])
		} else {
			ok = sh.q.InsertTail(args[0])
		}
		if !ok {
			return errors.Errorf("insert failed: queue absent or full")
		}
	}
	return nil
}

func (sh *shell) remove(head bool) error {
	var e *ringqueue.Element
	if head {
		e = sh.q.RemoveHead(nil)
	} else {
		e = sh.q.RemoveTail(nil)
	}
	if e == nil {
		return errors.Errorf("remove failed: queue absent or empty")
	}
	fmt.Fprintln(sh.out, e.Value())
	e.Release()
	return nil
}

func (sh *shell) freeQueue() {
	if sh.q != nil {
		logger.Debugf("freeing queue with %d elements", sh.q.Len())
	}
	sh.q.Free()
	sh.q = nil
}

const usage = `commands:
  new            create a fresh queue (frees any current one)
  free           free the current queue
  ih STR [n]     insert STR at the head, n times
  it STR [n]     insert STR at the tail, n times
  rh             remove the head element and print it
  rt             remove the tail element and print it
  size           print the element count
  show           print the queue contents
  dm             delete the middle element
  dedup          delete duplicate runs (queue must be sorted)
  swap           swap adjacent pairs
  reverse        reverse the queue
  sort           sort the queue ascending (stable)
  stats          print telemetry counters
  quit           leave the shell
`
