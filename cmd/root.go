/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/packagewjx/labor-demand/internal/datasource"
	"github.com/packagewjx/labor-demand/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Global Flags
const (
	FlagConfig        = "config"
	FlagDataFile      = "data-file"
	FlagMysqlHost     = "mysql-host"
	FlagMysqlUser     = "mysql-user"
	FlagMysqlPassword = "mysql-password"
	FlagMysqlDatabase = "mysql-database"
	FlagLogLevel      = "log-level"
	FlagLogJson       = "log-json"
)

const (
	DefaultDataFile = "base_data.csv"
	envPrefix       = "LABOR_DEMAND"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "labor-demand",
	Short: "配送中心电动叉车与人工需求估计工具",
	Long: "根据历史运营数据训练模型，预测出库F&B所需的电动叉车数量，\n" +
		"并按规则计算DRP、入库、托盘搬运、人工卸货与NW PET的需求。",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		utils.SetLogOutput(os.Stderr, viper.GetBool(FlagLogJson))
		return utils.SetLogLevel(viper.GetString(FlagLogLevel))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, FlagConfig, "",
		"配置文件，默认为$HOME/.labor-demand.yaml")
	rootCmd.PersistentFlags().String(FlagDataFile, DefaultDataFile,
		"历史运营数据的CSV文件")
	rootCmd.PersistentFlags().String(FlagMysqlHost, "",
		"Mysql服务器主机端口，格式为：host:port。若不为空，则从数据库读取历史数据")
	rootCmd.PersistentFlags().String(FlagMysqlUser, "root",
		"Mysql用户名")
	rootCmd.PersistentFlags().String(FlagMysqlPassword, "",
		"Mysql密码")
	rootCmd.PersistentFlags().String(FlagMysqlDatabase, datasource.DefaultDatabase,
		"Mysql数据库名")
	rootCmd.PersistentFlags().String(FlagLogLevel, "info",
		"日志级别，可选值：debug, info, warn, error")
	rootCmd.PersistentFlags().Bool(FlagLogJson, false,
		"若设置，则以JSON格式输出日志")

	for _, name := range []string{FlagDataFile, FlagMysqlHost, FlagMysqlUser, FlagMysqlPassword,
		FlagMysqlDatabase, FlagLogLevel, FlagLogJson} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".labor-demand" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".labor-demand")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// sourceConfig 由全局参数组成的数据来源配置
func sourceConfig() *datasource.SourceConfig {
	return &datasource.SourceConfig{
		DataFile:      viper.GetString(FlagDataFile),
		MysqlHost:     viper.GetString(FlagMysqlHost),
		MysqlUser:     viper.GetString(FlagMysqlUser),
		MysqlPassword: viper.GetString(FlagMysqlPassword),
		MysqlDatabase: viper.GetString(FlagMysqlDatabase),
	}
}
