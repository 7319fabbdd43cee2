package cnf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Dimacs holds a CNF problem described in DIMACS format
// see: https://logic.pdmi.ras.ru/~basolver/dimacs.html
type Dimacs struct {
	variables int
	clauses   [][]int
}

// Variables returns the number of variables, numbered 1 to n.
func (d *Dimacs) Variables() int {
	return d.variables
}

func (d *Dimacs) Clauses() [][]int {
	return d.clauses
}

// ParseError reports an invalid line of a DIMACS stream.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("invalid dimacs: %s", e.Reason)
	}
	return fmt.Sprintf("invalid dimacs at line %d (%s): %s", e.Line, e.Text, e.Reason)
}

var (
	commentLine = regexp.MustCompile(`^c(\s.*)?$`)
	headerLine  = regexp.MustCompile(`^p\s+cnf\s+\d+\s+\d+$`)
	clauseLine  = regexp.MustCompile(`^(-?\d+\s+)+0$`)
)

// Parse reads a DIMACS formatted stream. The number of variables and
// clauses declared in the header must match the clauses that follow.
func Parse(r io.Reader) (*Dimacs, error) {
	scanner := bufio.NewScanner(r)

	numVariables := 0
	numClauses := 0
	variableSet := map[int]struct{}{}
	var clauses [][]int

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "" || commentLine.MatchString(line):
			continue

		case headerLine.MatchString(line):
			if clauses != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Reason: "duplicate header"}
			}
			problem := strings.Fields(line)
			var err error
			if numVariables, err = strconv.Atoi(problem[2]); err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Reason: fmt.Sprintf("invalid number (%s)", problem[2])}
			}
			if numClauses, err = strconv.Atoi(problem[3]); err != nil {
				return nil, &ParseError{Line: lineNo, Text: line, Reason: fmt.Sprintf("invalid number (%s)", problem[3])}
			}
			clauses = make([][]int, 0, numClauses)

		case clauseLine.MatchString(line):
			if clauses == nil {
				return nil, &ParseError{Line: lineNo, Text: line, Reason: "missing header 'p cnf <variables> <clauses>'"}
			}
			terms := strings.Fields(line)
			clause := make([]int, 0, len(terms)-1)
			for _, term := range terms[:len(terms)-1] {
				lit, err := literal(term, numVariables)
				if err != nil {
					return nil, &ParseError{Line: lineNo, Text: line, Reason: err.Error()}
				}
				clause = append(clause, lit)
				// remember variables seen to check them against the header
				if lit < 0 {
					lit = -lit
				}
				variableSet[lit] = struct{}{}
			}
			clauses = append(clauses, clause)

		default:
			return nil, &ParseError{Line: lineNo, Text: line, Reason: "invalid command"}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dimacs data: %w", err)
	}

	if numVariables == 0 || numClauses == 0 || clauses == nil {
		return nil, &ParseError{Reason: "no variables or clauses found"}
	}

	if len(clauses) != numClauses {
		return nil, &ParseError{Reason: "number of clauses in header differ from the total number of clauses"}
	}

	if len(variableSet) != numVariables {
		return nil, &ParseError{Reason: "number of variables in header differ from the total number of unique variables found in clauses"}
	}

	return &Dimacs{
		variables: numVariables,
		clauses:   clauses,
	}, nil
}

func literal(term string, numVariables int) (int, error) {
	lit, err := strconv.Atoi(term)
	if err != nil {
		return 0, fmt.Errorf("%s is not a number", term)
	}
	if lit == 0 {
		return 0, errors.New("0 is not a valid variable")
	}
	if lit > numVariables || lit < -numVariables {
		return 0, fmt.Errorf("%s is not a valid variable", term)
	}
	return lit, nil
}
