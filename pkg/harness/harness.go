// Package harness drives an index from a line-oriented command session:
// keys are bulk loaded from a reader and then an interactive loop reads
// commands and their integer arguments.
package harness

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kgantsov/ravl/pkg/errors"
	"github.com/kgantsov/ravl/pkg/index"
)

const commandsPrompt = "Choose a command: (s)earch, (i)nsert, (d)elete, (r)ank, (f)ind rank, (q)uit\n"

type Harness struct {
	idx *index.Index
	in  *bufio.Scanner
	out io.Writer
}

func NewHarness(idx *index.Index, in io.Reader, out io.Writer) *Harness {
	return &Harness{
		idx: idx,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func parseKey(line string) (int32, error) {
	key, err := strconv.ParseInt(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidKey, strings.TrimSpace(line))
	}
	return int32(key), nil
}

// Load inserts one key per line from r with nil values, printing the tree
// after every key. Blank and malformed lines are skipped.
func (h *Harness) Load(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, err := parseKey(line)
		if err != nil {
			log.Warn().Err(err).Msg("Skipping input line")
			continue
		}
		fmt.Fprintf(h.out, "read %d\n", key)
		h.idx.Insert(key, nil)
		if err := h.report(); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (h *Harness) report() error {
	if _, err := fmt.Fprint(h.out, "** The tree is now:\n"); err != nil {
		return err
	}
	if err := h.idx.Print(h.out); err != nil {
		return err
	}
	_, err := fmt.Fprint(h.out, "**\n")
	return err
}

func (h *Harness) readLine() (string, bool) {
	if !h.in.Scan() {
		return "", false
	}
	return h.in.Text(), true
}

// readKey prompts for an argument. ok is false once the input is exhausted.
func (h *Harness) readKey(prompt string) (key int32, ok bool, err error) {
	fmt.Fprint(h.out, prompt)
	line, ok := h.readLine()
	if !ok {
		return 0, false, nil
	}
	key, err = parseKey(line)
	return key, true, err
}

// Run reads commands until quit or end of input. The index is closed on
// return.
func (h *Harness) Run() error {
	defer h.idx.Close()

	for {
		fmt.Fprint(h.out, commandsPrompt)
		line, ok := h.readLine()
		if !ok || strings.HasPrefix(line, "q") {
			fmt.Fprint(h.out, "Quit selected. Goodbye!\n")
			return h.in.Err()
		}

		done, err := h.dispatch(line)
		if err != nil {
			return err
		}
		if done {
			fmt.Fprint(h.out, "\nQuit selected. Goodbye!\n")
			return h.in.Err()
		}
	}
}

// dispatch executes one command. done reports that the input ended while
// the command waited for its argument.
func (h *Harness) dispatch(line string) (done bool, err error) {
	var command byte
	if line != "" {
		command = line[0]
	}

	switch command {
	case 's':
		key, ok, err := h.readKey("Search selected. Enter key to search for: ")
		if !ok {
			return true, nil
		}
		if err != nil {
			return false, h.invalid(err)
		}
		entry, err := h.idx.Search(key)
		if err != nil {
			fmt.Fprint(h.out, "This key is not in the tree.\n")
			return false, nil
		}
		fmt.Fprintf(h.out, "Key %d was found at height %d, subtree size %d.\n", entry.Key, entry.Height, entry.Size)
	case 'i':
		key, ok, err := h.readKey("Insert selected. Enter key to insert (no values in this simple tester): ")
		if !ok {
			return true, nil
		}
		if err != nil {
			return false, h.invalid(err)
		}
		h.idx.Insert(key, nil)
		return false, h.report()
	case 'd':
		key, ok, err := h.readKey("Delete selected. Enter key to delete: ")
		if !ok {
			return true, nil
		}
		if err != nil {
			return false, h.invalid(err)
		}
		h.idx.Delete(key)
		return false, h.report()
	case 'r':
		key, ok, err := h.readKey("Rank selected. Enter key to search for: ")
		if !ok {
			return true, nil
		}
		if err != nil {
			return false, h.invalid(err)
		}
		r, err := h.idx.Rank(key)
		if err != nil {
			fmt.Fprint(h.out, "This key is not in the tree.\n")
			return false, nil
		}
		fmt.Fprintf(h.out, "This key has rank %d.\n", r)
	case 'f':
		fmt.Fprint(h.out, "Find rank selected. Enter rank to find: ")
		line, ok := h.readLine()
		if !ok {
			return true, nil
		}
		r, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return false, h.invalid(fmt.Errorf("%w: %q", errors.ErrInvalidKey, strings.TrimSpace(line)))
		}
		entry, err := h.idx.FindRank(r)
		if err != nil {
			fmt.Fprint(h.out, "There is no node with this rank in the tree.\n")
			return false, nil
		}
		fmt.Fprintf(
			h.out,
			"This rank was found in node with key %d, at height %d, subtree size %d.\n",
			entry.Key, entry.Height, entry.Size,
		)
	default:
		log.Debug().Err(errors.ErrUnknownCommand).Str("command", line).Msg("Ignoring input")
	}

	return false, nil
}

func (h *Harness) invalid(err error) error {
	log.Warn().Err(err).Msg("Invalid argument")
	_, werr := fmt.Fprintf(h.out, "%s\n", err)
	return werr
}
