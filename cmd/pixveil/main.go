package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pixveil/pixveil"
	"github.com/pixveil/pixveil/internal/config"
	"github.com/pixveil/pixveil/internal/logging"
)

// outBaseName is the fixed name of the produced image; the extension
// follows the input container.
const outBaseName = "pixveil_out"

var (
	stepColor = color.New(color.FgCyan)
	okColor   = color.New(color.FgGreen, color.Bold)
	errColor  = color.New(color.FgRed)
	keyColor  = color.New(color.FgYellow, color.Bold)
	stdin     = bufio.NewReader(os.Stdin)
)

// Program entry point

func main() {
	_ = godotenv.Load()

	configPath := flag.String("config", "pixveil.yaml", "The filepath of an optional YAML config file")
	threshold := flag.Int("threshold", -1, "The local-complexity threshold (overrides the config file)")
	factor := flag.Int("factor", -1, "The attempt budget factor (overrides the config file)")
	dev := flag.Bool("dev", false, "Whether to enable debug console output")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		errColor.Fprintf(os.Stderr, "[-] Could not load the config file '%v': %v\n", *configPath, err)
		os.Exit(1)
	}
	if *threshold >= 0 {
		cfg.Threshold = *threshold
	}
	if *factor > 0 {
		cfg.AttemptFactor = *factor
	}

	logger := logging.New(cfg.Development || *dev, cfg.LogFile)
	defer logger.Sync()

	fmt.Printf("pixveil v%v\n", pixveil.Version())
	fmt.Println("1) Embed a message")
	fmt.Println("2) Extract a message")
	mode := prompt("Enter 1, 2 or 12 (both): ")
	if mode != "1" && mode != "2" && mode != "12" {
		errColor.Fprintf(os.Stderr, "[-] Unknown mode %q.\n", mode)
		os.Exit(1)
	}

	params := pixveil.Params{
		Threshold:     cfg.Threshold,
		AttemptFactor: cfg.AttemptFactor,
	}

	var key, stegPath string
	if mode == "1" || mode == "12" {
		key, stegPath = runEmbed(params, logger)
	}
	if mode == "2" || mode == "12" {
		if mode == "2" {
			key = prompt("[*] What key did the embedding party give you? ")
			stegPath = prompt("[*] Which container to extract from? ")
		}
		runExtract(key, stegPath, params, logger)
	}
}

func runEmbed(params pixveil.Params, logger *zap.Logger) (key, outPath string) {
	params.Password = prompt("[*] Which password to use? ")
	text := prompt("[*] What text to embed? ")
	inPath := prompt("[*] Which container to use? ")

	ext := ".bmp"
	if strings.EqualFold(filepath.Ext(inPath), ".png") {
		ext = ".png"
	}
	outPath = filepath.Join(filepath.Dir(inPath), outBaseName+ext)

	stepColor.Println("[*] Embedding...")
	key, err := pixveil.Embed(&pixveil.EmbedConfig{
		ImagePath: inPath,
		OutPath:   outPath,
		Message:   []byte(text),
		Params:    params,
		Logger:    logger,
	})
	if err != nil {
		errColor.Fprintf(os.Stderr, "[-] Embedding failed: %v\n", err)
		os.Exit(1)
	}

	okColor.Printf("[+] Wrote %v\n", outPath)
	fmt.Println("[+] Pass this key to whoever will extract the message:")
	keyColor.Println(key)
	return key, outPath
}

func runExtract(key, stegPath string, params pixveil.Params, logger *zap.Logger) {
	password, numBits, err := pixveil.ParseKey(key)
	if err != nil {
		errColor.Fprintf(os.Stderr, "[-] %v\n", err)
		os.Exit(1)
	}
	params.Password = password

	stepColor.Println("[*] Extracting...")
	data, err := pixveil.Extract(&pixveil.ExtractConfig{
		ImagePath: stegPath,
		NumBits:   numBits,
		Params:    params,
		Logger:    logger,
	})
	if err != nil {
		errColor.Fprintf(os.Stderr, "[-] Extraction failed: %v\n", err)
		os.Exit(1)
	}

	// Text decoding is best-effort: invalid sequences degrade to a visible
	// placeholder instead of failing the whole operation.
	text := strings.ToValidUTF8(string(data), "�")
	okColor.Printf("[+] Extracted text: %q\n", text)
}

func prompt(msg string) string {
	stepColor.Print(msg)
	line, err := stdin.ReadString('\n')
	if err != nil && len(line) == 0 {
		errColor.Fprintln(os.Stderr, "[-] No input available.")
		os.Exit(1)
	}
	return strings.TrimSpace(line)
}
