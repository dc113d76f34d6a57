// Shelfmark - Book Similarity and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/shelfmark

/*
Package supervisor provides process supervision for Shelfmark using suture v4.

Long-running services are organized into a two-layer tree for failure
isolation:

	RootSupervisor ("shelfmark")
	├── EngineSupervisor ("engine-layer")
	│   └── EngineService (cache warm-up, periodic stats)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crash loop in engine maintenance backs off inside its own layer and never
restarts the HTTP server.

Supervisor events (service failures, panics, backoff, resume) are reported
through a *slog.Logger via sutureslog. Pass logging.NewSlogLogger to route
them into the application's zerolog output.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(
	    logging.NewSlogLogger(logging.Logger()),
	    supervisor.DefaultTreeConfig(),
	)
	if err != nil {
	    return err
	}
	tree.AddEngineService(services.NewEngineService(engine, engineCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, 10*time.Second, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}

	report, err := tree.UnstoppedServiceReport()

# Thread Safety

Services may be added before or after Serve starts. Service tokens are scoped
to the layer that issued them.

# See Also

  - internal/supervisor/services: suture.Service wrappers
  - github.com/thejerf/suture/v4
*/
package supervisor
