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
	"github.com/packagewjx/labor-demand/internal/server"
	"github.com/spf13/cobra"
)

const (
	FlagPort     = "port"
	FlagEvaluate = "evaluate"
	FlagRelease  = "release"
)

var (
	port     uint16
	evaluate bool
	release  bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动网页与HTTP接口",
	Long: "启动时读取历史数据并训练模型，之后通过网页表单或POST /api/v1/labor-demand接口计算需求。\n" +
		"模型训练失败时服务器仍然启动，Outbound F&B Battery Jack显示为unavailable。\n",
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := server.NewServer(&server.ServerConfig{
			Port:     port,
			Source:   *sourceConfig(),
			Evaluate: evaluate,
			Release:  release,
		})
		if err != nil {
			return err
		}

		return server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Uint16VarP(&port, FlagPort, "p", server.DefaultPort,
		"服务端口号")
	serveCmd.Flags().BoolVar(&evaluate, FlagEvaluate, false,
		"若设置，则启动时在测试集上评估主模型并输出日志")
	serveCmd.Flags().BoolVar(&release, FlagRelease, false,
		"若设置，则使用gin的release模式")
}
