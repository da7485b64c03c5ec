package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/deltaticks/tickindex/tape"
)

func main() {
	var filePath string
	var profile bool
	var tail int
	flag.StringVar(&filePath, "f", "", "Path to a tick file with side,price,volume lines")
	flag.BoolVar(&profile, "profile", false, "Print the per price tick histogram")
	flag.IntVar(&tail, "tail", 0, "Print the last n ticks in arrival order")
	flag.Parse()

	if filePath == "" {
		log.Fatal("no input file, use -f")
	}

	recorder := &Recorder{}
	tp := tape.NewTape(recorder)

	file, err := os.Open(filePath)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	timeStart := time.Now()
	count, err := replay(tp, file)
	if err != nil {
		log.Fatal(err)
	}
	timeElapsed := time.Since(timeStart)

	summary, err := tp.Summary()
	if err != nil {
		log.Fatal(err)
	}
	printSummary(summary)
	if profile {
		fmt.Printf("PRICE PROFILE:\n")
		for _, level := range tp.Profile() {
			fmt.Printf("%16s %12d\n", level.Price.ToFloatString(), level.Ticks)
		}
	}
	if tail > 0 {
		fmt.Printf("TAPE TAIL:\n")
		skip := tp.Len() - tail
		i := 0
		tp.Each(func(tick *tape.Tick) bool {
			if i >= skip {
				fmt.Printf("%8d %4s %16s %16s\n",
					tick.ID(), tick.Side(), tick.Price().ToFloatString(), tick.Volume().ToFloatString())
			}
			i++
			return false
		})
	}
	recorder.PrintStatistics()
	fmt.Printf("Checksum: %016x\n", tp.Checksum())

	rps := float64(count) * float64(time.Second) / float64(timeElapsed)
	fmt.Printf("RPS: %.5f\n", rps)
}

////////////////////////////////////////////////////////////////

// replay records every tick line from r on the tape and returns the amount
// of recorded ticks. Blank lines and # comments are skipped.
func replay(tp *tape.Tape, r io.Reader) (int, error) {
	count := 0
	line := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		side, price, volume, err := parseTick(text)
		if err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := tp.Record(side, price, volume); err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		count++
	}
	return count, scanner.Err()
}

func parseTick(text string) (tape.Side, tape.Uint, tape.Uint, error) {
	fields := strings.Split(text, ",")
	if len(fields) != 3 {
		return 0, tape.NewZeroUint(), tape.NewZeroUint(), fmt.Errorf("expected side,price,volume, got %q", text)
	}
	var side tape.Side
	switch strings.ToLower(strings.TrimSpace(fields[0])) {
	case "buy", "b":
		side = tape.SideBuy
	case "sell", "s":
		side = tape.SideSell
	default:
		return 0, tape.NewZeroUint(), tape.NewZeroUint(), fmt.Errorf("unknown side %q", fields[0])
	}
	price, err := tape.NewUintFromFloatString(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, tape.NewZeroUint(), tape.NewZeroUint(), fmt.Errorf("invalid price %q: %w", fields[1], err)
	}
	volume, err := tape.NewUintFromFloatString(strings.TrimSpace(fields[2]))
	if err != nil {
		return 0, tape.NewZeroUint(), tape.NewZeroUint(), fmt.Errorf("invalid volume %q: %w", fields[2], err)
	}
	return side, price, volume, nil
}

func printSummary(summary tape.Summary) {
	fmt.Printf("TAPE SUMMARY:\n")
	fmt.Printf("Ticks %23d\n", summary.Ticks)
	fmt.Printf("Low %25s\n", summary.Low.ToFloatString())
	fmt.Printf("High %24s\n", summary.High.ToFloatString())
	fmt.Printf("Median %22s\n", summary.Median.ToFloatString())
	fmt.Printf("VWAP %24s\n", summary.VWAP.ToFloatString())
	fmt.Printf("Buy volume %18s\n", summary.BuyVolume.ToFloatString())
	fmt.Printf("Sell volume %17s\n", summary.SellVolume.ToFloatString())
	fmt.Printf("Volume %22s\n", summary.Volume.ToFloatString())
	fmt.Printf("Notional %20s\n", summary.Notional.ToFloatString())
}
