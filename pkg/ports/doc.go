/*
Package ports defines the driven ports (interfaces) of fixtura.

These interfaces decouple the generator and its transports from storage
backends, so the HTTP and MCP adapters can serve schemas from memory or
from Redis.

# Key Interfaces

  - SchemaStore: Responsible for saving and loading named schemas.
*/
package ports
