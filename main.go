package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/KNICEX/amplitude-scanner/internal/entity"
	"github.com/KNICEX/amplitude-scanner/internal/repo"
	"github.com/KNICEX/amplitude-scanner/internal/service/exchange"
	"github.com/KNICEX/amplitude-scanner/ioc"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	once    bool
)

func bindFlags(fs *pflag.FlagSet) {
	// --config=./config/xxx.yaml
	fs.StringVar(&cfgFile, "config", "./config/config.yaml", "specify config file")
	fs.String("log-level", "", "debug|info|warn|error, overrides log.level")
	if err := viper.BindPFlag("log.level", fs.Lookup("log-level")); err != nil {
		panic(err)
	}
}

func initViper() error {
	// .env 不存在时忽略
	_ = godotenv.Load()

	viper.SetConfigFile(cfgFile)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	ioc.InitLogger()
	return nil
}

func main() {
	root := &cobra.Command{
		Use:   "amplitude-scanner",
		Short: "Scan futures 5m klines and alert on high amplitude",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initViper()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScanner(cmd.Context())
		},
		SilenceUsage: true,
	}
	bindFlags(root.PersistentFlags())
	root.Flags().BoolVar(&once, "once", false, "run a single scan cycle even if schedule.every is set")

	root.AddCommand(markCmd("ignore", entity.MarkIgnore, "Skip symbols in future scans"))
	root.AddCommand(markCmd("unignore", entity.MarkNone, "Scan previously ignored symbols again"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runScanner(ctx context.Context) error {
	db := ioc.InitDB()
	cli := ioc.InitBinanceFuturesCli()
	scanMetrics, pusher := ioc.InitMetrics()

	exSvc := ioc.InitBinanceService(cli)
	notifier := ioc.InitNotifier()
	symbolRepo := repo.NewSymbolRepo(db)

	task := ioc.InitAmplitudeMonitorTask(exSvc.SymbolService(), exSvc.MarketService(), notifier, symbolRepo, scanMetrics, pusher)
	if err := ioc.InitRunner(task, once).Run(ctx); err != nil {
		slog.Error("amplitude scanner stopped", "error", err)
		return err
	}
	return nil
}

// markCmd 无参数时列出被忽略的交易对
func markCmd(use, mark, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [SYMBOL...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			symbolRepo := repo.NewSymbolRepo(ioc.InitDB())

			if len(args) == 0 {
				symbols, err := symbolRepo.FindByMark(ctx, entity.MarkIgnore)
				if err != nil {
					return err
				}
				for _, s := range symbols {
					fmt.Println(exchange.Symbol{Base: s.Base, Quote: s.Quote}.ToString())
				}
				return nil
			}

			return markSymbols(ctx, symbolRepo, args, mark)
		},
	}
}

// markSymbols 取消标记时跳过从未标记过的交易对, 不新建记录
func markSymbols(ctx context.Context, symbolRepo repo.SymbolRepo, args []string, mark string) error {
	for _, arg := range args {
		symbol := exchange.SplitSymbol(arg)
		if symbol.IsZero() {
			return fmt.Errorf("unrecognized symbol %q", arg)
		}
		if mark == entity.MarkNone {
			_, err := symbolRepo.FindByBaseAndQuote(ctx, symbol.Base, symbol.Quote)
			if errors.Is(err, repo.ErrSymbolNotFound) {
				slog.Warn("symbol was never marked, skip", "symbol", symbol.ToString())
				continue
			}
			if err != nil {
				return err
			}
		}
		if err := symbolRepo.SetMark(ctx, symbol.Base, symbol.Quote, mark); err != nil {
			return fmt.Errorf("mark %s: %w", symbol.ToString(), err)
		}
		slog.Info("symbol marked", "symbol", symbol.ToString(), "mark", mark)
	}
	return nil
}
