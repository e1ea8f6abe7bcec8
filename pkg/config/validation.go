package config

import "fmt"

// validate validates the configuration.
func validate(cfg *Config) error {
	if cfg.Decoder.RingBufferBytes <= 0 {
		return fmt.Errorf("decoder.ring_buffer_bytes must be positive")
	}

	if cfg.Web.Enabled {
		if cfg.Web.Port <= 0 || cfg.Web.Port > 65535 {
			return fmt.Errorf("web.port must be between 1 and 65535")
		}
	}

	if cfg.Metrics.Enabled && cfg.Metrics.Prometheus.Enabled {
		if cfg.Metrics.Prometheus.Port <= 0 || cfg.Metrics.Prometheus.Port > 65535 {
			return fmt.Errorf("metrics.prometheus.port must be between 1 and 65535")
		}
	}

	for i, src := range cfg.Sources {
		if !src.Enabled {
			continue
		}
		if src.Name == "" {
			return fmt.Errorf("sources[%d]: name is required", i)
		}

		switch src.Padding {
		case "", PaddingFull, PaddingMsbPadded, PaddingLsbPadded:
		default:
			return fmt.Errorf("source %s: invalid padding %q", src.Name, src.Padding)
		}

		switch src.Kind {
		case SourceFile:
			if src.Path == "" {
				return fmt.Errorf("source %s: path is required for file sources", src.Name)
			}
		case SourceTCP:
			if src.Address == "" {
				return fmt.Errorf("source %s: address is required for tcp sources", src.Name)
			}
		case SourceSerial:
			if src.Device == "" {
				return fmt.Errorf("source %s: device is required for serial sources", src.Name)
			}
			if src.BaudRate <= 0 {
				return fmt.Errorf("source %s: baud_rate must be positive for serial sources", src.Name)
			}
		default:
			return fmt.Errorf("source %s: invalid kind %q (must be file, tcp, or serial)", src.Name, src.Kind)
		}
	}

	return nil
}
