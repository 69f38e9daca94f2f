package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"CscannerGo/internal/config"
	"CscannerGo/internal/logger"
	"CscannerGo/internal/netutil"
	"CscannerGo/internal/portscan"
	"CscannerGo/internal/report"
)

const version = "v2.0.1"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.Red("[-] %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "cscannerGo [target] [start_port end_port]",
		Short: "TCP 全连接端口扫描器",
		Long: `对单个主机的连续端口区间做 TCP connect 扫描.

示例:
  cscannerGo scanme.example.org
  cscannerGo 192.168.1.1 1 1024
  cscannerGo 10.0.0.1 -p 20-443 -t 50 -s -o results.txt
  cscannerGo 10.0.0.1 -p- --strategy queue --format yaml -o results.yaml
不带目标运行时进入交互模式.`,
		Args:          cobra.RangeArgs(0, 3),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ReadFile(v, cfgFile); err != nil {
				return err
			}
			if err := applyArgs(v, args); err != nil {
				return err
			}
			if v.GetString(config.KeyTarget) == "" {
				if err := promptConfig(v); err != nil {
					return err
				}
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "配置文件路径 (yaml)")
	flags.StringP(config.KeyPorts, "p", config.DefaultPorts, "端口范围 (如 1-1000, 80, -p- 表示全部)")
	flags.IntP(config.KeyThreads, "t", config.DefaultWorkers, fmt.Sprintf("并发数 (最大 %d)", config.MaxWorkers))
	flags.StringP(config.KeyTimeout, "T", config.DefaultTimeout.String(), "单端口连接超时 (纯数字按秒, 如 2 或 500ms)")
	flags.StringP(config.KeyOutput, "o", "", "结果输出文件")
	flags.String(config.KeyFormat, config.DefaultFormat, "输出文件格式 (text, yaml, json)")
	flags.BoolP(config.KeyServices, "s", true, "解析服务名")
	flags.BoolP(config.KeyShowClosed, "v", false, "显示关闭端口")
	flags.String(config.KeyStrategy, config.DefaultStrategy, "端口分配策略 (partition, queue)")
	flags.String("log-level", "warn", "日志级别 (debug, info, warn, error)")
	flags.String("log-format", "text", "日志格式 (text, json)")
	flags.String("log-file", "", "日志文件, 设置后日志写入文件并按大小轮转")

	_ = v.BindPFlags(flags)
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))
	_ = v.BindPFlag(config.KeyLogFile, flags.Lookup("log-file"))
	return cmd
}

// applyArgs 处理位置参数: target 或 target start end
func applyArgs(v *viper.Viper, args []string) error {
	switch len(args) {
	case 0:
	case 1:
		v.Set(config.KeyTarget, args[0])
	case 3:
		v.Set(config.KeyTarget, args[0])
		v.Set(config.KeyPorts, args[1]+"-"+args[2])
	default:
		return fmt.Errorf("expected <target> or <target> <start_port> <end_port>, got %d arguments", len(args))
	}
	return nil
}

func run(cfg config.Scan) error {
	if cfg.Log.FilePath != "" {
		cfg.Log.Output = "file"
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}

	console := report.NewConsole(os.Stdout, cfg.ShowClosed)
	console.Banner(version)

	if cfg.Workers > config.MaxWorkers {
		color.Yellow("[!] Thread count limited to %d", config.MaxWorkers)
	}
	if cfg.Address == "" {
		color.Yellow("[*] Resolving hostname: %s", cfg.Target)
		cfg.Address, err = netutil.Resolve(cfg.Target)
		if err != nil {
			return err
		}
		color.Green("[+] Host resolved: %s -> %s", cfg.Target, cfg.Address)
	}

	bar := newProgressBar(cfg.TotalPorts())
	scanner, err := portscan.NewScanner(cfg,
		portscan.WithLogger(log),
		portscan.WithProgress(bar),
	)
	if err != nil {
		return err
	}
	cfg = scanner.Config()
	console.Configuration(cfg)
	color.New(color.Bold).Println("\n[+] Starting scan...")

	sink, summary := scanner.Run()
	_ = bar.Finish()
	fmt.Println()

	results := sink.Results()
	if err := console.Results(results); err != nil {
		log.WithError(err).Warn("render result table")
	}
	console.Statistics(summary)

	if cfg.Output != "" {
		if err := report.Save(cfg.Output, cfg, results, summary); err != nil {
			console.Error("Cannot create output file: %v", err)
			log.WithFields(logrus.Fields{"path": cfg.Output}).WithError(err).Error("save results")
			return err
		}
		console.Saved(cfg.Output)
	}
	color.Green("\n[+] Scan completed successfully!")
	return nil
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetDescription("[cyan][扫描中][reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
