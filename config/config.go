package config

import (
	"github.com/spf13/viper"
)

type App struct {
	Server Server `yaml:"Server"`
	MySQL  MySQL  `yaml:"MySQL"`
	Redis  Redis  `yaml:"Redis"`
	Jwt    Jwt    `yaml:"Jwt"`
}

type Server struct {
	Port string `yaml:"port"`
}

type MySQL struct {
	Host   string `yaml:"host"`
	Port   string `yaml:"port"`
	User   string `yaml:"user"`
	Pass   string `yaml:"pass"`
	DBName string `yaml:"dbName"`
}

type Redis struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	Pass string `yaml:"pass"`
}

type Jwt struct {
	// Expire 签发的Token过期时间，单位秒
	Expire int64 `yaml:"expire"`
	// Secret 签名秘钥
	Secret string `yaml:"secret"`
}

// InitConfig 加载配置文件，环境变量可覆盖同名配置项
func InitConfig() App {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("config/")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("Server.port", "9001")
	v.SetDefault("Jwt.expire", 18000)

	if err := v.ReadInConfig(); err != nil {
		panic("配置文件读取失败: " + err.Error())
	}

	var c App
	if err := v.Unmarshal(&c); err != nil {
		panic("配置文件解析失败: " + err.Error())
	}

	return c
}
