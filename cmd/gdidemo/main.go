package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.design/x/hotkey/mainthread"

	"gdikit/internal/config"
)

const version = "v0.1.0"

// options 全局命令行参数
type options struct {
	configPath string
	logLevel   string
	noTray     bool
	window     uint64
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "gdidemo",
		Short:         "GDI 设备上下文绘制演示",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "配置文件路径（默认 "+config.GetConfigPath()+"）")
	flags.StringVar(&opts.logLevel, "log-level", "", "日志级别：debug, info, warn, error")
	flags.BoolVar(&opts.noTray, "no-tray", false, "不显示托盘图标")
	flags.Uint64Var(&opts.window, "window", 0, "目标窗口句柄，0 表示整个桌面")

	root.AddCommand(
		newFillCmd(opts),
		newBlitCmd(opts),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "显示配置文件路径",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "配置文件路径:", config.GetConfigPath())
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "显示版本信息",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "gdidemo", version)
		},
	}
}

func main() {
	code := 0
	// 托盘和热键需要在主线程运行
	mainthread.Init(func() {
		if err := newRootCmd().Execute(); err != nil {
			fmt.Fprintln(os.Stderr, "错误:", err)
			code = 1
		}
	})
	os.Exit(code)
}
