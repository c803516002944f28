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

	"github.com/packagewjx/labor-demand/internal/datasource"
	"github.com/packagewjx/labor-demand/internal/preprocess"
	"github.com/packagewjx/labor-demand/internal/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	OutputPrecisionFlag = "outputPrecision"

	DefaultOutputPrecision = 2
)

var outputPrecision int

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean inputFile outputFile",
	Short: "清洗历史数据文件，并输出到新文件中",
	Long: "将所有数字列去除千位分隔符并转换为数字，计算PF%，\n" +
		"并使用IQR方法截断Total Cases Dispatched等六列的异常值。无法解析的值输出为空。\n",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("参数错误")
		} else if args[0] == args[1] {
			return fmt.Errorf("inputFile与outputFile不能一致")
		}
		_, err := os.Stat(args[1])
		if !os.IsNotExist(err) {
			return fmt.Errorf("输出文件已存在")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		df, err := preprocess.LoadAndClean(datasource.NewCsvFileSource(args[0]))
		if err != nil {
			return err
		}

		fout, err := os.OpenFile(args[1], os.O_WRONLY|os.O_EXCL|os.O_CREATE, 0666)
		if err != nil {
			return errors.Wrap(err, "创建输出文件错误")
		}
		defer func() {
			_ = fout.Close()
		}()

		err = utils.WriteTable(fout, df, outputPrecision)
		if err != nil {
			return errors.Wrap(err, "输出文件错误")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().IntVarP(&outputPrecision, OutputPrecisionFlag, "p", DefaultOutputPrecision,
		"输出文件数据精度，默认为2")
}
