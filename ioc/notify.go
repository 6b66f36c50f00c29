package ioc

import (
	"log/slog"
	"os"

	"github.com/KNICEX/amplitude-scanner/internal/service/notification"
	"github.com/KNICEX/amplitude-scanner/internal/service/notification/pushplus"
	"github.com/spf13/viper"
)

// InitNotifier 配置了 pushplus token 时推送到微信, 否则打印到标准输出
func InitNotifier() notification.Notifier {
	var cfg pushplus.Config
	if err := viper.UnmarshalKey("notify.pushplus", &cfg); err != nil {
		panic(err)
	}
	// UnmarshalKey 读不到环境变量覆盖的子键
	if err := viper.BindEnv("notify.pushplus.token", "NOTIFY_PUSHPLUS_TOKEN", "PUSHPLUS_TOKEN"); err != nil {
		panic(err)
	}
	cfg.Token = viper.GetString("notify.pushplus.token")

	if cfg.Token == "" {
		slog.Warn("pushplus token not set, alerts go to stdout")
		return notification.NewConsoleNotifier(os.Stdout)
	}
	n, err := pushplus.NewNotifier(cfg)
	if err != nil {
		panic(err)
	}
	return n
}
