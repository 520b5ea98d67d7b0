// Package pulse provides a self-correcting interval job runner that emits
// liveness heartbeats over a pub/sub proxy.
//
// The scheduler polls the wall clock, dispatches a user-supplied job at a
// configured cadence (every tick, second, minute, hour or day), announces
// liveness every fifth second of the minute, and absorbs its own
// measurement overhead by sleeping only the remainder of each cycle's
// padding. Job and heartbeat failures are confined to the cycle they
// occur in; the loop never dies because one run went wrong.
//
// # Quick Start
//
//	cfg := pulse.DefaultConfig()
//	cfg.Interval = pulse.IntervalMinute
//	cfg.Proxy.ServiceName = "billing"
//
//	registry := proxy.NewRegistry(func(pc proxy.Config) types.Socket {
//	    return natssock.New(pc.Identity)
//	})
//	conn := registry.GetOrCreate(cfg.Proxy)
//	emitter := heartbeat.NewEmitter(conn, cfg.Proxy.ServiceName)
//
//	job := pulse.JobFunc("billing", func(ctx context.Context) error {
//	    return runBilling(ctx)
//	})
//
//	sched, err := pulse.NewScheduler(&cfg, job, pulse.WithHeartbeat(emitter))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := sched.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// See the examples/ directory for a complete working example.
package pulse
