//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"stemcount/internal/adapter/detect"
	"stemcount/internal/adapter/language"
	"stemcount/internal/counter"
	"stemcount/internal/domain"
)

var (
	registry *language.Registry
	detector *detect.Detector
)

func init() {
	registry = language.DefaultRegistry()
	detector = detect.NewDetector(0)
}

func main() {
	c := make(chan struct{})

	js.Global().Set("stemcountCount", js.FuncOf(countStems))
	js.Global().Set("stemcountDetect", js.FuncOf(detectLanguage))
	js.Global().Set("stemcountLanguages", js.FuncOf(listLanguages))

	<-c
}

type countOptions struct {
	NgramSize        int  `json:"ngramSize"`
	IncludeStopwords bool `json:"includeStopwords"`
	Top              int  `json:"top"`
}

func countStems(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: stemcountCount(recordsJSON, [optionsJSON])")
	}

	var records []domain.SentenceRecord
	if err := json.Unmarshal([]byte(args[0].String()), &records); err != nil {
		return makeError("invalid records: " + err.Error())
	}

	opts := countOptions{NgramSize: 1, Top: 20}
	if len(args) > 1 {
		if err := json.Unmarshal([]byte(args[1].String()), &opts); err != nil {
			return makeError("invalid options: " + err.Error())
		}
	}

	wc := counter.NewWordCounter(registry)
	if opts.NgramSize > 0 {
		if err := wc.SetNgramSize(opts.NgramSize); err != nil {
			return makeError(err.Error())
		}
	}
	wc.SetIncludeStopwords(opts.IncludeStopwords)

	counts, err := wc.CountStems(records)
	if err != nil {
		return makeError("counting failed: " + err.Error())
	}

	return makeResult(map[string]interface{}{
		"counts":    counts,
		"grams":     counts.Total(),
		"stems":     len(counts),
		"sentences": len(records),
		"top":       counts.TopStems(opts.Top),
	})
}

func detectLanguage(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return makeError("usage: stemcountDetect(text)")
	}

	code, ok := detector.Detect(args[0].String())
	result := map[string]interface{}{
		"detected": ok,
		"language": code,
	}
	if ok {
		_, supported := registry.Provider(code)
		result["supported"] = supported
	}
	return makeResult(result)
}

func listLanguages(this js.Value, args []js.Value) interface{} {
	languages := make([]map[string]interface{}, 0)
	for _, code := range registry.Codes() {
		provider, ok := registry.Provider(code)
		if !ok {
			continue
		}
		languages = append(languages, map[string]interface{}{
			"code": provider.Code(),
			"name": provider.Name(),
		})
	}
	return makeResult(map[string]interface{}{
		"languages": languages,
	})
}

func makeError(msg string) interface{} {
	result, _ := json.Marshal(map[string]interface{}{
		"error": msg,
	})
	return string(result)
}

func makeResult(data map[string]interface{}) interface{} {
	result, _ := json.Marshal(data)
	return string(result)
}
