// Package list provides the collaborators of the odd-even sort command: it
// generates lists of keys, reads them from text input, and prints them.
package list

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
)

// DefaultMax is the default exclusive upper bound for generated keys.
const DefaultMax = 1000

/*
Generate returns n pseudo-random keys in the range [0, limit). The same
seed always yields the same list.

Generate panics if n < 0 or limit <= 0.
*/
func Generate(n, limit int, seed int64) []int {
	if n < 0 {
		panic(fmt.Sprintf("invalid list length: %v", n))
	}
	if limit <= 0 {
		panic(fmt.Sprintf("invalid key bound: %v", limit))
	}
	rng := rand.New(rand.NewSource(seed))
	a := make([]int, n)
	for i := range a {
		a[i] = rng.Intn(limit)
	}
	return a
}

/*
Read reads n whitespace-separated integers from r.

Read returns an error if r ends before n integers have been read, or if
one of the first n tokens is not an integer. Input after the n-th
integer is not consumed beyond the scanner's buffer.
*/
func Read(r io.Reader, n int) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	a := make([]int, 0, n)
	for len(a) < n && scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("element %v: %w", len(a), err)
		}
		a = append(a, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading list: %w", err)
	}
	if len(a) < n {
		return nil, fmt.Errorf("reading list: got %v of %v elements: %w", len(a), n, io.ErrUnexpectedEOF)
	}
	return a, nil
}

// Print writes title followed by a colon on one line, the elements of a
// separated by spaces on the next, and an empty line.
func Print(w io.Writer, title string, a []int) error {
	var b strings.Builder
	b.WriteString(title)
	b.WriteString(":\n")
	for _, v := range a {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(' ')
	}
	b.WriteString("\n\n")
	_, err := io.WriteString(w, b.String())
	return err
}
