package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestAPIMetricsExportCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewAPIMetrics(reg)

	m.IncLogin("success")
	m.IncLogin("failure")
	m.IncSaleCreated()
	m.IncPaymentCallback("successful")
	m.ObserveRequest("POST", "200", 120*time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "auth_logins_total", "result", "success"); err != nil {
		t.Fatalf("fetch logins: %v", err)
	} else if got != 1 {
		t.Fatalf("expected success logins=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "payment_callbacks_total", "status", "successful"); err != nil {
		t.Fatalf("fetch callbacks: %v", err)
	} else if got != 1 {
		t.Fatalf("expected callbacks=1, got %f", got)
	}
}

func TestNilRegistererIsSafe(t *testing.T) {
	m := NewAPIMetrics(nil)
	m.IncLogin("success")
	m.IncSaleCreated()
	m.IncPaymentCallback("")
	m.ObserveRequest("GET", "", time.Second)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, labelName, labelValue string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == labelName && label.GetValue() == labelValue {
					return metric.GetCounter().GetValue(), nil
				}
			}
		}
	}
	return 0, fmt.Errorf("metric %s{%s=%q} not found", name, labelName, labelValue)
}
